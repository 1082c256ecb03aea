//go:build debug

package geopath

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[geopath DEBUG] ", log.LstdFlags)

// Debug logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
