// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package health tracks backend reachability with periodic pings.
package health

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the default spacing between reachability checks.
const DefaultInterval = 30 * time.Second

// Status is the backend reachability verdict.
type Status int

const (
	// StatusUnknown means no check has completed yet.
	StatusUnknown Status = iota
	// StatusHealthy means the last ping round-tripped successfully.
	StatusHealthy
	// StatusUnhealthy means the last ping failed for any reason.
	StatusUnhealthy
)

// String returns the status name for display.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "connected"
	case StatusUnhealthy:
		return "disconnected"
	default:
		return "checking"
	}
}

// Pinger is the backend surface the monitor depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor performs reachability checks and remembers the last verdict.
// A failed check is an expected state, never an error: callers read the
// status, they do not handle failures. Checks run from command goroutines
// while the UI thread reads the verdict, so all state is mutex-guarded.
type Monitor struct {
	pinger   Pinger
	interval time.Duration

	mu        sync.Mutex
	status    Status
	lastCheck time.Time
	lastErr   string
}

// NewMonitor creates a monitor around the given pinger. A non-positive
// interval falls back to DefaultInterval.
func NewMonitor(pinger Pinger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{pinger: pinger, interval: interval}
}

// Interval returns the configured check spacing.
func (m *Monitor) Interval() time.Duration { return m.interval }

// Status returns the last verdict.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// LastCheck returns when the last check completed, zero before the first.
func (m *Monitor) LastCheck() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCheck
}

// LastError returns the failure message from the last unhealthy check.
func (m *Monitor) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Healthy reports whether the backend answered the most recent ping.
func (m *Monitor) Healthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status == StatusHealthy
}

// Check runs one reachability check and updates the verdict. The ping
// itself runs unlocked so a slow backend never blocks readers.
func (m *Monitor) Check(ctx context.Context) Status {
	err := m.pinger.Ping(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastCheck = time.Now()
	if err != nil {
		m.status = StatusUnhealthy
		m.lastErr = err.Error()
	} else {
		m.status = StatusHealthy
		m.lastErr = ""
	}
	return m.status
}
