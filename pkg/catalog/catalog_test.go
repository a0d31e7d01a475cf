package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/facadegen/pkg/errors"
)

const sample = `
default_width = 80

[modules]
wall = 100
window = 120

[floors]
Ground = 450
Floor1 = 300
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	widths := c.Widths()
	for name, want := range map[string]int{"wall": 100, "window": 120, "door": 80} {
		got, ok := widths.Size(name)
		if !ok || got != want {
			t.Errorf("Widths().Size(%q) = %d, %v; want %d, true", name, got, ok, want)
		}
	}

	heights := c.Heights()
	if h, ok := heights.Size("Ground"); !ok || h != 450 {
		t.Errorf("Heights().Size(Ground) = %d, %v", h, ok)
	}
	if _, ok := heights.Size("Attic"); ok {
		t.Error("Heights() should not know Attic")
	}

	if diff := cmp.Diff([]string{"wall", "window"}, c.ModuleNames()); diff != "" {
		t.Errorf("ModuleNames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Floor1", "Ground"}, c.FloorNames()); diff != "" {
		t.Errorf("FloorNames mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if c.DefaultWidth != DefaultWidth {
		t.Errorf("DefaultWidth = %d, want %d", c.DefaultWidth, DefaultWidth)
	}
	if w, _ := c.Widths().Size("anything"); w != DefaultWidth {
		t.Errorf("width = %d, want %d", w, DefaultWidth)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "default_width = "},
		{"negative default", "default_width = -1"},
		{"zero module", "[modules]\nwall = 0"},
		{"reserved name", "[floors]\n\"a-b\" = 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DefaultWidth != 80 {
		t.Errorf("DefaultWidth = %d, want 80", c.DefaultWidth)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) err = %v, want NOT_FOUND", err)
	}
}
