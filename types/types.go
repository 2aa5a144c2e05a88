// Package types defines small shared enums used across the partitioner packages.
//
// This package exists so that geom, sweep, fillrule, and the root partitioner
// package can agree on a vocabulary (point orientation) without importing one
// another.
package types
