// Package options provides the functional-options pattern used to configure a
// [github.com/vecmesh/partitioner.Partitioner] at construction time.
//
// # Key Features
//
//   - Floating-Point Precision Control: WithEpsilon overrides APPROX_EPSILON,
//     the tolerance used throughout the sweep for "close enough" position and
//     parameter comparisons.
//   - Fill Rule Selection: WithFillRule picks the initial [fillrule.Rule],
//     equivalent to calling SetFillRule immediately after construction.
//
// Options are applied with Apply, which takes a set of defaults and layers
// each Option on top of it in order.
package options

import "github.com/vecmesh/partitioner/fillrule"

// Config holds the configurable parameters of a Partitioner.
type Config struct {
	// Epsilon is the tolerance used for approximate position and parameter
	// comparisons throughout the sweep. Default: 1e-6 (APPROX_EPSILON).
	Epsilon float32

	// FillRule selects how the B-quad emitter decides which spans between
	// active edges are filled. Default: fillrule.EvenOdd.
	FillRule fillrule.Rule
}

// Option is a functional option that modifies a [Config].
type Option func(*Config)

// WithEpsilon overrides the tolerance used for approximate floating-point
// comparisons. A negative epsilon is treated as zero (exact comparisons).
func WithEpsilon(epsilon float32) Option {
	return func(c *Config) {
		if epsilon < 0 {
			epsilon = 0
		}
		c.Epsilon = epsilon
	}
}

// WithFillRule sets the initial fill rule, equivalent to an immediate call to
// SetFillRule after construction.
func WithFillRule(rule fillrule.Rule) Option {
	return func(c *Config) {
		c.FillRule = rule
	}
}

// Apply layers each Option onto defaults in order and returns the result.
func Apply(defaults Config, opts ...Option) Config {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
