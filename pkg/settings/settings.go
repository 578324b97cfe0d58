// Package settings holds the user-mutable kiosk preferences: the active
// theme and the per-prayer adhaan enable map. It is an explicit value
// passed into the app; persistence goes through the state store at the
// edges, never from the prayer or playback core.
package settings

import (
	"encoding/json"
	"log/slog"

	"gitlab.com/tinyland/lab/minaret/pkg/cache"
	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
)

// Store keys. Two entries, matching the on-device layout: a plain theme
// name and a JSON-encoded per-prayer boolean map. No schema versioning.
const (
	keyTheme  = "theme"
	keyAdhaan = "adhaan"
)

// Settings is the complete persisted preference set.
type Settings struct {
	Theme  string
	Adhaan map[prayer.Name]bool
}

// Default returns the factory preferences: dark theme, adhaan enabled for
// Fajr, Maghrib and Isha.
func Default() Settings {
	return Settings{
		Theme: "dark",
		Adhaan: map[prayer.Name]bool{
			prayer.Fajr:    true,
			prayer.Dhuhr:   false,
			prayer.Asr:     false,
			prayer.Maghrib: true,
			prayer.Isha:    true,
		},
	}
}

// Enabled reports whether adhaan audio is enabled for the given prayer.
func (s Settings) Enabled(n prayer.Name) bool {
	return s.Adhaan[n]
}

// Toggle flips the adhaan preference for the given prayer.
func (s *Settings) Toggle(n prayer.Name) {
	s.Adhaan[n] = !s.Adhaan[n]
}

// Load reads settings from the store. Absent keys fall back to defaults.
// Malformed persisted JSON also resets to defaults with a warning: the
// kiosk must boot unattended, so losing two toggles beats failing startup.
func Load(store *cache.Store, logger *slog.Logger) Settings {
	if logger == nil {
		logger = slog.Default()
	}
	s := Default()

	if data, _, ok := store.Get(keyTheme); ok {
		var theme string
		if err := json.Unmarshal(data, &theme); err != nil || theme == "" {
			logger.Warn("malformed theme preference, using default", "error", err)
		} else {
			s.Theme = theme
		}
	}

	if data, _, ok := store.Get(keyAdhaan); ok {
		byName := map[string]bool{}
		if err := json.Unmarshal(data, &byName); err != nil {
			logger.Warn("malformed adhaan preferences, using defaults", "error", err)
		} else {
			for name, enabled := range byName {
				if n, ok := prayer.ParseName(name); ok {
					s.Adhaan[n] = enabled
				}
			}
		}
	}

	return s
}

// Save writes both settings entries to the store.
func Save(store *cache.Store, s Settings) error {
	theme, err := json.Marshal(s.Theme)
	if err != nil {
		return err
	}
	if err := store.Put(keyTheme, theme); err != nil {
		return err
	}

	byName := make(map[string]bool, len(s.Adhaan))
	for n, enabled := range s.Adhaan {
		byName[n.String()] = enabled
	}
	data, err := json.Marshal(byName)
	if err != nil {
		return err
	}
	return store.Put(keyAdhaan, data)
}
