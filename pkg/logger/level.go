package logger

import (
	"errors"
	"log/slog"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levels = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func parseLevel(l string) slog.Level {
	if level, ok := levels[strings.ToLower(l)]; ok {
		return level
	}
	return slog.LevelInfo
}

func knownLevel(value any) error {
	s, _ := value.(string)
	if _, ok := levels[strings.ToLower(s)]; !ok {
		return errors.New("must be one of debug, info, warn, error")
	}
	return nil
}

func knownFormat(value any) error {
	s, _ := value.(string)
	switch strings.ToLower(s) {
	case FormatJSON, FormatText:
		return nil
	default:
		return errors.New("must be json or text")
	}
}
