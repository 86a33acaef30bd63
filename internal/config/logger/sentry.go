package logger

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"opsdash/internal/config"
)

// SentryHook forwards error-level log events to Sentry
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook creates a dedicated Sentry hub for the configured DSN
func NewSentryHook(telemetry config.Telemetry) (*SentryHook, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         telemetry.SentryDSN,
		Environment: telemetry.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
	if err != nil {
		return nil, err
	}

	return &SentryHook{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Run implements zerolog.Hook
func (h *SentryHook) Run(_ *zerolog.Event, level zerolog.Level, message string) {
	if level < zerolog.ErrorLevel || message == "" {
		return
	}

	h.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevel(level))
		h.hub.CaptureMessage(message)
	})
}

// Flush waits until queued events are sent or the timeout expires
func (h *SentryHook) Flush(timeout time.Duration) bool {
	return h.hub.Flush(timeout)
}

func sentryLevel(level zerolog.Level) sentry.Level {
	switch level {
	case zerolog.FatalLevel:
		return sentry.LevelFatal
	case zerolog.PanicLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelError
	}
}
