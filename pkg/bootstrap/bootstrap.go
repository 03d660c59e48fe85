// Package bootstrap holds process-level configuration and logger setup shared
// by the server and the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultTrackedYear is the year summarized when no explicit target is given.
const DefaultTrackedYear = 2025

// defaultMaxUploadBytes bounds a single CSV upload. A full year of Garmin
// activity history is well under a megabyte.
const defaultMaxUploadBytes = 10 << 20

// Config holds standard configuration for the server and CLI.
type Config struct {
	Addr           string
	TrackedYear    int
	MaxUploadBytes int64
	Environment    string
	SentryDSN      string
	Release        string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	cfg := &Config{
		Addr:           os.Getenv("ADDR"),
		TrackedYear:    DefaultTrackedYear,
		MaxUploadBytes: defaultMaxUploadBytes,
		Environment:    os.Getenv("ENVIRONMENT"),
		SentryDSN:      os.Getenv("SENTRY_DSN"),
		Release:        os.Getenv("RELEASE"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if v := os.Getenv("TRACKED_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			cfg.TrackedYear = year
		}
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	return cfg
}

// LogLevelFromEnv maps the LOG_LEVEL variable to a slog level, defaulting to
// info.
func LogLevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ComponentHandler wraps a slog.Handler to prepend [component] to the message.
type ComponentHandler struct {
	slog.Handler
	component string
}

// WithGroup implements slog.Handler.
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{
		Handler:   h.Handler.WithGroup(name),
		component: h.component,
	}
}

// WithAttrs implements slog.Handler.
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newComp := h.component
	for _, a := range attrs {
		if a.Key == "component" {
			newComp = a.Value.String()
		}
	}
	return &ComponentHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		component: newComp,
	}
}

// Handle implements slog.Handler.
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	comp := h.component
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			comp = a.Value.String()
			return false
		}
		return true
	})

	if comp != "" {
		newRecord := slog.NewRecord(r.Time, r.Level, fmt.Sprintf("[%s] %s", comp, r.Message), r.PC)
		r.Attrs(func(a slog.Attr) bool {
			newRecord.AddAttrs(a)
			return true
		})
		r = newRecord
	}

	return h.Handler.Handle(ctx, r)
}

// NewLogger creates a configured JSON logger for a service.
func NewLogger(serviceName string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: LogLevelFromEnv()}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(&ComponentHandler{Handler: handler}).With("service", serviceName)
}
