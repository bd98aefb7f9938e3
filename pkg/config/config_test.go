package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[sample]
length = 6
count = 20
seed = 42
uniform = true

[guess]
points = "1,2,3,5,9"
forbid = "5-9"

[export]
banner = "# patterns"
min_length = 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Config{
		Sample: Sample{Length: 6, Count: 20, Seed: 42, Uniform: true},
		Guess:  Guess{Points: "1,2,3,5,9", Forbid: "5-9"},
		Export: Export{Banner: "# patterns", MinLength: 4},
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[sample]\nseed = 7\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Sample.Length != Default().Sample.Length || cfg.Sample.Count != Default().Sample.Count {
		t.Errorf("defaults lost: %+v", cfg.Sample)
	}
	if cfg.Sample.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Sample.Seed)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[sample\nlength = 4"},
		{"length too short", "[sample]\nlength = 3"},
		{"length too long", "[sample]\nlength = 10"},
		{"negative count", "[sample]\ncount = -1"},
		{"bad points", "[guess]\npoints = \"0,1\""},
		{"bad edge", "[guess]\nforbid = \"1:3\""},
		{"unknown key", "[sample]\nlenght = 5"},
		{"negative export length", "[export]\nmax_length = -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, perrors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "patternlock", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
