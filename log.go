package spritebatch

import (
	"log/slog"
	"os"
)

// batchLogLevel controls the log level of the package logger.
// Default is LevelInfo, which suppresses Debug messages.
var batchLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for sprite batches that use
// the package logger.
func SetVerbose(v bool) {
	if v {
		batchLogLevel.Set(slog.LevelDebug)
	} else {
		batchLogLevel.Set(slog.LevelInfo)
	}
}

// batchLogger is the default logger; WithLogger overrides it per batch.
var batchLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: batchLogLevel}))
