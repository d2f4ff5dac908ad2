package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	Requests     atomic.Int64
	Errors       atomic.Int64
	DragStarts   atomic.Int64
	DragOvers    atomic.Int64
	DragEnds     atomic.Int64
	BoardChanges atomic.Int64
	StartTime    time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// observeRequest counts a finished request; statuses of 400 and above count as errors
func (m *Metrics) observeRequest(status int) {
	m.Requests.Add(1)
	if status >= 400 {
		m.Errors.Add(1)
	}
}

// observeChange counts a drag event or mutation that reordered or edited the board
func (m *Metrics) observeChange(changed bool) {
	if changed {
		m.BoardChanges.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests     int64     `json:"requests"`
	Errors       int64     `json:"errors"`
	DragStarts   int64     `json:"drag_starts"`
	DragOvers    int64     `json:"drag_overs"`
	DragEnds     int64     `json:"drag_ends"`
	BoardChanges int64     `json:"board_changes"`
	StartTime    time.Time `json:"start_time"`
	Uptime       string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:     m.Requests.Load(),
		Errors:       m.Errors.Load(),
		DragStarts:   m.DragStarts.Load(),
		DragOvers:    m.DragOvers.Load(),
		DragEnds:     m.DragEnds.Load(),
		BoardChanges: m.BoardChanges.Load(),
		StartTime:    m.StartTime,
		Uptime:       time.Since(m.StartTime).String(),
	}
}
