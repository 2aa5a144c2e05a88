//go:build !debug

package partitioner

// logDebugf is a no-op outside a -tags debug build, so debug logging never
// costs a production caller anything.
func logDebugf(format string, v ...interface{}) {}
