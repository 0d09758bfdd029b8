//go:build debug

package dcel

import (
	"log"
	"os"
)

// Debug logger instance, enabled only when the module is built with -tags debug.
var logger = log.New(os.Stderr, "[dcel DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages at construction and face-assignment points.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
