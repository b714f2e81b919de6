// Package config loads gamedesc configuration and discovers descriptor documents.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mydehq/gamedesc/internal/types"
)

// Defaults holds built-in configuration values
type Defaults struct {
	ConfigFile string
	Descriptor string
	Report     string
}

// GetDefaults returns the built-in defaults
func GetDefaults() Defaults {
	return Defaults{
		ConfigFile: "gamedesc.yml",
		Descriptor: "gamelist.xml",
		Report:     "gamedesc-report.csv",
	}
}

// GlobalPath returns the location of the global config file
func GlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "gamedesc", "config.yml"), nil
}

// Load reads a config file. Relative paths inside it resolve against its directory.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &types.Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	cfg.BaseDir = filepath.Dir(abs)
	applyDefaults(cfg)
	return cfg, nil
}

// LoadGlobal loads the global config file
func LoadGlobal() (*types.Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Find loads the config file in dir, then the global one, then falls back to
// defaults rooted at dir.
func Find(dir string) (*types.Config, error) {
	local := filepath.Join(dir, GetDefaults().ConfigFile)
	cfg, err := Load(local)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg, err = LoadGlobal()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	cfg = &types.Config{Root: ".", BaseDir: abs}
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes cfg as YAML to path
func Save(path string, cfg *types.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func applyDefaults(cfg *types.Config) {
	d := GetDefaults()
	if cfg.Descriptor == "" {
		cfg.Descriptor = d.Descriptor
	}
	if cfg.Report == "" {
		cfg.Report = d.Report
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
}
