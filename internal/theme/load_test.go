package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStylesPopulated(t *testing.T) {
	s := Default()
	if s.Button == nil || s.Item == nil || s.ActiveItem == nil || s.SelectedMark == nil {
		t.Fatalf("expected all default styles populated")
	}
}

func TestLoadPaletteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	body := "active_item = \"212\"\nselected_mark = \"42\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ActiveItem == nil || s.Button == nil {
		t.Fatalf("expected styles built from palette with defaults for missing keys")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing theme file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("active_item = ["), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed theme file")
	}
}
