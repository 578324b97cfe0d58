package collectors

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry manages the set of named collectors. It is safe for concurrent
// use; fetch goroutines report their outcomes through RecordRun.
type Registry struct {
	mu         sync.RWMutex
	collectors map[string]Collector
	statuses   map[string]*CollectorStatus
}

// NewRegistry returns an empty registry ready for collector registration.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make(map[string]Collector),
		statuses:   make(map[string]*CollectorStatus),
	}
}

// Register adds a collector. It returns an error if a collector with the
// same name is already registered.
func (r *Registry) Register(c Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.collectors[name]; exists {
		return fmt.Errorf("collector %q already registered", name)
	}
	r.collectors[name] = c
	r.statuses[name] = &CollectorStatus{Name: name}
	return nil
}

// Get returns the collector with the given name, or false if not found.
func (r *Registry) Get(name string) (Collector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.collectors[name]
	return c, ok
}

// List returns a sorted slice of all registered collector names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.collectors))
	for name := range r.collectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordRun updates the run metadata for a completed fetch. Unknown names
// are ignored.
func (r *Registry) RecordRun(name string, err error, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.statuses[name]
	if !ok {
		return
	}
	s.LastRun = time.Now()
	s.LastError = err
	s.LastLatency = latency
}

// AllStatus returns all collector statuses sorted by name. Healthy comes
// from the collector's own tracker, so a source that never ran (restored
// from a snapshot) reports healthy.
func (r *Registry) AllStatus() []CollectorStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CollectorStatus, 0, len(r.statuses))
	for name, s := range r.statuses {
		status := *s
		status.Healthy = r.collectors[name].Healthy()
		out = append(out, status)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
