package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the complete minaret configuration tree.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Location LocationConfig `toml:"location"`
	Adhaan   AdhaanConfig   `toml:"adhaan"`
	Weather  WeatherConfig  `toml:"weather"`
	Quotes   QuotesConfig   `toml:"quotes"`
	Theme    ThemeConfig    `toml:"theme"`
	Display  DisplayConfig  `toml:"display"`
}

// GeneralConfig holds paths and logging settings.
type GeneralConfig struct {
	StateDir string `toml:"state_dir"` // settings + provider snapshots
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"` // "debug", "info", "warn", "error"
}

// LocationConfig pins the kiosk to one place. The prayer-times API is keyed
// by city/country/method; the weather API by latitude/longitude/timezone.
type LocationConfig struct {
	City      string  `toml:"city"`
	Country   string  `toml:"country"`
	Method    int     `toml:"method"` // Al Adhan calculation method id
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Timezone  string  `toml:"timezone"`
}

// AdhaanConfig controls the call-to-prayer audio.
type AdhaanConfig struct {
	AudioFile string `toml:"audio_file"`
	Player    string `toml:"player"` // override player binary, empty = probe
}

// WeatherConfig controls the weather snapshot.
type WeatherConfig struct {
	SnapshotTTL Duration `toml:"snapshot_ttl"` // reuse window across restarts
}

// QuotesConfig controls the rotating quote panel.
type QuotesConfig struct {
	PackFile       string   `toml:"pack_file"` // optional YAML quote pack
	RotateInterval Duration `toml:"rotate_interval"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"` // "dark", "light", or a custom theme name
	Dir  string `toml:"dir"`  // directory of custom TOML themes
}

// DisplayConfig holds presentation breakpoints.
type DisplayConfig struct {
	CompactMaxWidth int `toml:"compact_max_width"` // below this, compact mode
}

// DefaultConfig returns the configuration used when no file exists. The
// default location is Rabat, Morocco with the Muslim World League method.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(xdgStateHome(home), "minaret")

	return &Config{
		General: GeneralConfig{
			StateDir: stateDir,
			LogFile:  filepath.Join(stateDir, "minaret.log"),
			LogLevel: "info",
		},
		Location: LocationConfig{
			City:      "Rabat",
			Country:   "Morocco",
			Method:    3,
			Latitude:  34.0209,
			Longitude: -6.8416,
			Timezone:  "Africa/Casablanca",
		},
		Adhaan: AdhaanConfig{
			AudioFile: filepath.Join(stateDir, "adhaan.mp3"),
		},
		Weather: WeatherConfig{
			SnapshotTTL: Duration{30 * time.Minute},
		},
		Quotes: QuotesConfig{
			RotateInterval: Duration{2 * time.Minute},
		},
		Theme: ThemeConfig{
			Name: "dark",
		},
		Display: DisplayConfig{
			CompactMaxWidth: 80,
		},
	}
}

// Validate checks the configuration for values the app cannot run with.
func (c *Config) Validate() error {
	if c.Location.City == "" || c.Location.Country == "" {
		return fmt.Errorf("location.city and location.country are required")
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude %v out of range", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude %v out of range", c.Location.Longitude)
	}
	if c.Quotes.RotateInterval.Duration <= 0 {
		return fmt.Errorf("quotes.rotate_interval must be positive")
	}
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.General.LogLevel)
	}
	return nil
}

// applyEnvOverrides checks environment variables and overrides config
// values, so a fleet of kiosks can share one config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MINARET_CITY"); v != "" {
		cfg.Location.City = v
	}
	if v := os.Getenv("MINARET_COUNTRY"); v != "" {
		cfg.Location.Country = v
	}
	if v := os.Getenv("MINARET_TIMEZONE"); v != "" {
		cfg.Location.Timezone = v
	}
	if v := os.Getenv("MINARET_AUDIO_FILE"); v != "" {
		cfg.Adhaan.AudioFile = v
	}
	if v := os.Getenv("MINARET_THEME"); v != "" {
		cfg.Theme.Name = v
	}
}

// xdgStateHome resolves $XDG_STATE_HOME with the usual default.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}

// xdgConfigHome resolves $XDG_CONFIG_HOME with the usual default.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
