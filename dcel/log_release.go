//go:build !debug

package dcel

// logDebugf is a no-op outside a -tags debug build; see log_debug.go for the real logger.
func logDebugf(format string, v ...interface{}) {}
