package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Widget thTOMLWidget `toml:"widget"`
	Status thTOMLStatus `toml:"status"`
	Chart  thTOMLChart  `toml:"chart"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLWidget struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type thTOMLStatus struct {
	OK    string `toml:"ok"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
}

type thTOMLChart struct {
	Line string `toml:"line"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition. Colors missing from the file
// inherit from the dark builtin so partial themes stay usable.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing name")
	}

	t := thDarkTheme()
	t.Name = tt.Name
	thOverlay(&t.Background, tt.Base.Background)
	thOverlay(&t.Foreground, tt.Base.Foreground)
	thOverlay(&t.Dim, tt.Base.Dim)
	thOverlay(&t.Accent, tt.Base.Accent)
	thOverlay(&t.Border, tt.Widget.Border)
	thOverlay(&t.BorderFocus, tt.Widget.BorderFocus)
	thOverlay(&t.Title, tt.Widget.Title)
	thOverlay(&t.StatusOK, tt.Status.OK)
	thOverlay(&t.StatusWarn, tt.Status.Warn)
	thOverlay(&t.StatusError, tt.Status.Error)
	thOverlay(&t.ChartLine, tt.Chart.Line)
	return t, nil
}

// thOverlay replaces *dst with src when src is a well-formed hex color.
func thOverlay(dst *string, src string) {
	if src == "" {
		return
	}
	if thHexColorRegex.MatchString(src) {
		*dst = src
	}
}

// LoadDir registers every *.toml theme found in dir. Unreadable or invalid
// files are skipped with the returned error naming the first failure; valid
// themes before and after it are still registered.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var firstErr error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", e.Name(), err)
			}
			continue
		}
		thRegister(t)
	}
	return firstErr
}
