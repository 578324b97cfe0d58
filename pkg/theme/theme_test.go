package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"dark", "light", "night"} {
		if !Has(name) {
			t.Errorf("builtin theme %q not registered", name)
		}
	}
}

func TestGetFallsBackToDark(t *testing.T) {
	got := Get("does-not-exist")
	if got.Name != "dark" {
		t.Errorf("fallback theme = %q, want dark", got.Name)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	if Get("LIGHT").Name != "light" {
		t.Error("theme lookup is case sensitive")
	}
}

func TestSetCurrent(t *testing.T) {
	defer SetCurrent("dark")

	SetCurrent("light")
	if Current.Name != "light" {
		t.Errorf("Current = %q, want light", Current.Name)
	}
	if Current.Dark() {
		t.Error("light theme reports Dark() = true")
	}
}

func TestLoadFromTOML(t *testing.T) {
	data := []byte(`
name = "mosque"

[base]
accent = "#c8a24b"
dim = "#555555"

[status]
error = "#aa2222"
`)
	got, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if got.Name != "mosque" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Accent != "#c8a24b" || got.StatusError != "#aa2222" {
		t.Errorf("colors not applied: %+v", got)
	}
	// Unspecified colors inherit from the dark builtin.
	if got.Border != thDarkTheme().Border {
		t.Errorf("Border = %q, want dark default", got.Border)
	}
}

func TestLoadFromTOMLRejects(t *testing.T) {
	if _, err := LoadFromTOML([]byte(`[base]`)); err == nil {
		t.Error("nameless theme accepted")
	}
	if _, err := LoadFromTOML([]byte(`name = `)); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestLoadFromTOMLIgnoresBadColors(t *testing.T) {
	got, err := LoadFromTOML([]byte("name = \"x\"\n[base]\naccent = \"red\""))
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if got.Accent != thDarkTheme().Accent {
		t.Errorf("non-hex color applied: %q", got.Accent)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	good := "name = \"custom-kiosk\"\n[base]\naccent = \"#112233\"\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.toml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name ="), 0o644); err != nil {
		t.Fatal(err)
	}

	err := LoadDir(dir)
	if err == nil {
		t.Error("LoadDir did not surface the broken theme")
	}
	if !Has("custom-kiosk") {
		t.Error("valid theme not registered despite sibling failure")
	}
}
