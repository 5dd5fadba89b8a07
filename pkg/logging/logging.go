// Package logging provides the log sinks the loader can be wired to.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/provload/pkg/core"
)

// LevelFatal sits above slog.LevelError so handlers keep fatal lines apart.
const LevelFatal = slog.LevelError + 4

// Writer renders each line as "[LEVEL] message" followed by a newline.
func Writer(w io.Writer) core.LogFunc {
	var mu sync.Mutex
	return func(level core.Level, msg string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, core.Format(level, msg))
	}
}

// Default writes to stderr.
func Default() core.LogFunc {
	return Writer(os.Stderr)
}

// Discard drops every line.
func Discard() core.LogFunc {
	return func(core.Level, string) {}
}

// FromSlog forwards lines to logger at the matching slog level.
func FromSlog(logger *slog.Logger) core.LogFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(level core.Level, msg string) {
		logger.Log(context.Background(), SlogLevel(level), msg)
	}
}

// SlogLevel maps a loader level onto slog.
func SlogLevel(level core.Level) slog.Level {
	switch level {
	case core.LevelFatal:
		return LevelFatal
	case core.LevelError:
		return slog.LevelError
	case core.LevelWarn:
		return slog.LevelWarn
	case core.LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Filter drops lines less severe than max.
func Filter(next core.LogFunc, max core.Level) core.LogFunc {
	return func(level core.Level, msg string) {
		if level <= max {
			next(level, msg)
		}
	}
}
