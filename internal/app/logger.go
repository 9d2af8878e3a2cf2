package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/questlinehq/questline-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as the
// slog default, so package-level slog calls in third-party code land in the
// same stream.
//
// Format "json" is for production; anything else falls back to the text
// handler with source locations, which reads better during development.
// Level accepts debug, info, warn or error in any case and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
