package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config represents the gamedesc configuration file
type Config struct {
	Root       string            `yaml:"root"`
	Descriptor string            `yaml:"descriptor,omitempty"` // Descriptor file name inside each platform folder
	Report     string            `yaml:"report,omitempty"`     // CSV export path
	Platforms  []Platform        `yaml:"platforms,omitempty"`  // Explicit list, replaces discovery
	Names      map[string]string `yaml:"names,omitempty"`      // Folder label -> platform display name
	BaseDir    string            `yaml:"-"`
}

// Platform is one descriptor document to process.
type Platform struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	res := *c
	if len(c.Platforms) > 0 {
		res.Platforms = make([]Platform, len(c.Platforms))
		copy(res.Platforms, c.Platforms)
	}
	if len(c.Names) > 0 {
		res.Names = make(map[string]string, len(c.Names))
		for k, v := range c.Names {
			res.Names[k] = v
		}
	}
	return &res
}

// ResolvePath resolves p relative to the config file location.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// ResolvePlatform finds the explicitly configured platform with the given label
func (c *Config) ResolvePlatform(label string) (*Platform, error) {
	for i := range c.Platforms {
		if strings.EqualFold(c.Platforms[i].Label, label) {
			p := c.Platforms[i]
			p.Path = c.ResolvePath(p.Path)
			return &p, nil
		}
	}
	return nil, fmt.Errorf("no platform configured with label: %s", label)
}
