// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry provides file-backed request logging for pelorus.
//
// The terminal is owned by the UI, so logs go to a file instead of
// stdout. Each backend request produces two structured lines: one when
// it is sent, one when the response (or failure) arrives.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// =============================================================================
// REQUEST LOG
// =============================================================================

// RequestLog records backend traffic as structured JSON lines. It
// implements the api.Observer interface. The zero-value Nop log discards
// everything.
type RequestLog struct {
	logger zerolog.Logger
	closer io.Closer
}

// Nop returns a request log that discards all events.
func Nop() *RequestLog {
	return &RequestLog{logger: zerolog.Nop()}
}

// New creates a request log writing to w at the given minimum level.
func New(w io.Writer, level string) *RequestLog {
	return &RequestLog{
		logger: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// Open creates a request log appending to the file at path, creating
// parent directories as needed.
func Open(path string, level string) (*RequestLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	rl := New(f, level)
	rl.closer = f
	return rl, nil
}

// Close flushes and closes the underlying file, if any.
func (l *RequestLog) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Logger exposes the underlying logger for ad-hoc events.
func (l *RequestLog) Logger() *zerolog.Logger { return &l.logger }

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// =============================================================================
// OBSERVER IMPLEMENTATION
// =============================================================================

// RequestSent logs an outgoing backend request.
func (l *RequestLog) RequestSent(method, path, summary string) {
	l.logger.Info().
		Str("method", method).
		Str("path", path).
		Str("summary", summary).
		Msg("request sent")
}

// ResponseReceived logs the outcome of a backend request. A zero status
// means the request never reached the backend.
func (l *RequestLog) ResponseReceived(method, path string, status int, bytes int, elapsed time.Duration) {
	evt := l.logger.Info()
	if status == 0 || status >= 500 {
		evt = l.logger.Error()
	} else if status >= 400 {
		evt = l.logger.Warn()
	}
	evt.
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Int("bytes", bytes).
		Dur("elapsed", elapsed).
		Msg("response received")
}
