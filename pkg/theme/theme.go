// Package theme defines the color palettes for the minaret kiosk display
// and a registry of built-in and user-provided themes. The persisted theme
// preference selects one of these by name.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#14161f"
	Foreground string
	Dim        string // de-emphasized text
	Accent     string // countdown, current-prayer marker

	// Widget chrome
	Border      string
	BorderFocus string
	Title       string

	// Status colors
	StatusOK    string // enabled adhaan toggle, healthy provider
	StatusWarn  string // stale snapshot
	StatusError string // locked playback

	// Chart colors
	ChartLine string // hourly temperature sparkline
}

// Dark reports whether this is a dark-background palette.
func (t Theme) Dark() bool {
	return strings.ToLower(t.Name) != "light"
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}

	// Current holds the active theme (set via SetCurrent).
	Current Theme
)

func init() {
	thRegisterBuiltins()
	Current = thDarkTheme()
}

// Get returns a named theme, falling back to the dark builtin if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["dark"]
}

// Has reports whether a theme with the given name is registered.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
