package textinput

import (
	"log/slog"
	"os"
)

// logLevel controls debug logging for widgets.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// logger is shared by every widget in the process.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging for widgets.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Logger returns the package logger so backends can log through the same
// handler and level.
func Logger() *slog.Logger {
	return logger
}
