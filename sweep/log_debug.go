//go:build debug

package sweep

import (
	"log"
	"os"
)

// Debug logger instance, enabled only when the module is built with -tags debug.
var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages at each event the engine processes.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
