// Package collectors defines the interface and registry for minaret's data
// providers. Each provider (prayer times, weather) implements the Collector
// interface and is fetched fire-and-forget at startup; results arrive in
// the TUI event loop as app messages.
package collectors

import (
	"context"
	"time"
)

// Collector is the interface both external providers implement.
type Collector interface {
	// Name returns a unique identifier for this collector (e.g. "weather").
	Name() string

	// Collect performs one fetch and returns the data. The returned value
	// is opaque here; consumers type-assert based on the collector name.
	// There is no retry: a failed fetch leaves the display at defaults.
	Collect(ctx context.Context) (interface{}, error)

	// Healthy reports whether the last fetch succeeded. A collector that
	// has never run is considered healthy.
	Healthy() bool
}

// CollectorStatus tracks the runtime state of a single collector.
type CollectorStatus struct {
	Name        string
	Healthy     bool
	LastRun     time.Time
	LastError   error
	LastLatency time.Duration
}

// Health is the embeddable fetch-outcome tracker the concrete collectors
// share. The zero value reports healthy.
type Health struct {
	ran     bool
	lastErr error
}

// Record stores the outcome of a fetch.
func (h *Health) Record(err error) {
	h.ran = true
	h.lastErr = err
}

// Healthy implements the Collector health contract.
func (h *Health) Healthy() bool {
	return !h.ran || h.lastErr == nil
}
