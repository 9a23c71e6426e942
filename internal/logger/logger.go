// package logger provides the shared structured logger for the engine.
package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. It defaults to a no-op logger so library
// consumers opt in to output explicitly via Init.
var Log = zap.NewNop()

// Init replaces the no-op logger with a development logger that writes
// human-readable output to stderr. Call once at startup before any engine
// component is constructed.
//
// Returns:
//   - error: error if the zap logger could not be built
func Init() error {
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries. Safe to call on the no-op logger.
func Sync() {
	_ = Log.Sync()
}
