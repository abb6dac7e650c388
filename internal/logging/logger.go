package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the application's JSON logger at the named level ("debug",
// "info", "warn", "error"). An unknown name falls back to info.
func New(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// Discard returns a logger whose output goes nowhere. Tests use it to keep
// handler noise out of their output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
