//go:build debug

package partitioner

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[partitioner DEBUG] ", log.LstdFlags)

// logDebugf logs the one recoverable anomaly the emitter reports, a B-quad
// recursion depth cap reached, visible only when built with -tags debug.
// An under-resolved self-intersection is swapped without a log entry.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
