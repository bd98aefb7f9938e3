// Package config loads patternlock's optional TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/patternlock/config.toml (or
// ~/.config/patternlock/config.toml). A missing file is not an error; every
// field has a default. Command-line flags override file values.
//
// Example file:
//
//	[sample]
//	length  = 6
//	count   = 20
//	seed    = 42
//	uniform = true
//
//	[guess]
//	points = "1,2,3,5,9"
//	forbid = "5-9"
//
//	[export]
//	banner     = "# android unlock patterns"
//	min_length = 4
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

const (
	appName  = "patternlock"
	fileName = "config.toml"
)

// Config is the decoded configuration file.
type Config struct {
	Sample Sample `toml:"sample"`
	Guess  Guess  `toml:"guess"`
	Export Export `toml:"export"`
}

// Sample configures random pattern generation.
type Sample struct {
	Length  int    `toml:"length"`
	Count   int    `toml:"count"`
	Seed    uint64 `toml:"seed"` // 0 means seed from the clock
	Uniform bool   `toml:"uniform"`
}

// Guess configures the default restricted point set.
type Guess struct {
	Points string `toml:"points"`
	Forbid string `toml:"forbid"`
}

// Export configures text exports.
type Export struct {
	Banner    string `toml:"banner"`
	MinLength int    `toml:"min_length"`
	MaxLength int    `toml:"max_length"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Sample: Sample{
			Length: pattern.MinSampleLength,
			Count:  pattern.DefaultSampleCount,
		},
	}
}

// DefaultPath returns the configuration file location following the XDG
// convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of [Default]. A missing file yields
// the defaults. The decoded values are validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, perrors.New(perrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Validate checks value ranges and that the guess settings parse.
func (c Config) Validate() error {
	if c.Sample.Length < pattern.MinSampleLength || c.Sample.Length > pattern.MaxSampleLength {
		return perrors.New(perrors.ErrCodeInvalidLength, "sample.length %d outside %d..%d", c.Sample.Length, pattern.MinSampleLength, pattern.MaxSampleLength)
	}
	if c.Sample.Count < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "sample.count %d is negative", c.Sample.Count)
	}
	if _, err := grid.ParsePoints(c.Guess.Points); err != nil {
		return err
	}
	if _, err := grid.ParseEdges(c.Guess.Forbid); err != nil {
		return err
	}
	if c.Export.MinLength < 0 || c.Export.MaxLength < 0 {
		return perrors.New(perrors.ErrCodeInvalidLength, "export lengths must not be negative")
	}
	return nil
}
