// Package project loads the lumen.toml manifest that configures a check
// run: where the front-end writes CST documents and how output behaves.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the loader searches for.
const ManifestName = "lumen.toml"

// Manifest is a located, parsed lumen.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML layout.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Check   CheckConfig   `toml:"check"`
}

type ProjectConfig struct {
	Name   string `toml:"name"`
	CSTDir string `toml:"cst_dir"`
}

type CheckConfig struct {
	Jobs  int    `toml:"jobs"`  // 0 = GOMAXPROCS
	Color string `toml:"color"` // auto|on|off
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Check: CheckConfig{Color: "auto"},
	}
}

// Find walks from startDir upward looking for lumen.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest. A missing manifest is not
// an error; the defaults apply.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := parse(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func parse(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Check.Color {
	case "", "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: check.color must be auto, on, or off", path)
	}
	if cfg.Check.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: check.jobs must be >= 0", path)
	}
	return cfg, nil
}
