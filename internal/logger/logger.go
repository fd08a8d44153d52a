// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the bridge.
//
// *Logger exposes the whole zerolog API. Handlers get their request-scoped
// logger, tagged with the trace id, through FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger returns the process logger: JSON on stdout, every level
// enabled until SetLevel is called.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return New(os.Stdout, role)
}

// New writes JSON entries to w. Each entry carries role, a timestamp and
// the calling function under "func".
func New(w io.Writer, role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// SetLevel changes the global level. It reports false and changes nothing
// for an empty or unknown name.
func SetLevel(level string) bool {
	if level == "" {
		return false
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}

	zerolog.SetGlobalLevel(parsed)
	return true
}

// Component tags every entry of the returned logger with a component.
func (l *Logger) Component(component string) *Logger {
	return &Logger{l.Logger.With().Str("component", component).Logger()}
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields can be added without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached with zerolog's WithContext. It
// never returns nil: without one, zerolog's default context logger is used.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
