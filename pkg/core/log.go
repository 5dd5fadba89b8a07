package core

import (
	"fmt"
	"strings"
)

// Level is the severity of a loader log line. Lower values are more severe.
type Level int

const (
	LevelFatal Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{"FATAL", "ERROR", "WARN", "INFO", "DEBUG"}

func (l Level) String() string {
	if l < LevelFatal || l > LevelDebug {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel is the inverse of String, case-insensitive.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// LogFunc receives every line the loader emits. Calls are synchronous and
// ordered with respect to the caller.
type LogFunc func(level Level, msg string)

// Format renders a log line as "[LEVEL] message".
func Format(level Level, msg string) string {
	return "[" + level.String() + "] " + msg
}
