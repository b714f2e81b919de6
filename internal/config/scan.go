package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/mydehq/gamedesc/internal/types"
)

// Discover returns the platforms to process. An explicit platform list in the
// config wins; otherwise every immediate subdirectory of the root holding a
// descriptor file is a platform, ordered by label.
func Discover(cfg *types.Config) ([]types.Platform, error) {
	if len(cfg.Platforms) > 0 {
		out := make([]types.Platform, len(cfg.Platforms))
		for i, p := range cfg.Platforms {
			out[i] = types.Platform{Label: p.Label, Path: cfg.ResolvePath(p.Path)}
		}
		return out, nil
	}

	root := cfg.ResolvePath(cfg.Root)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var platforms []types.Platform
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(root, e.Name(), cfg.Descriptor)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		platforms = append(platforms, types.Platform{Label: e.Name(), Path: path})
	}

	if len(platforms) == 0 {
		return nil, types.ErrNoPlatforms{Root: root}
	}
	sort.SliceStable(platforms, func(a, b int) bool {
		return strings.ToLower(platforms[a].Label) < strings.ToLower(platforms[b].Label)
	})
	return platforms, nil
}

// Filter keeps the platforms whose label is in labels. An empty filter keeps all.
func Filter(platforms []types.Platform, labels []string) []types.Platform {
	if len(labels) == 0 {
		return platforms
	}
	want := make([]string, len(labels))
	for i, l := range labels {
		want[i] = strings.ToLower(strings.TrimSpace(l))
	}

	var out []types.Platform
	for _, p := range platforms {
		if slices.Contains(want, strings.ToLower(p.Label)) {
			out = append(out, p)
		}
	}
	return out
}

// Select returns the platforms named by labels, or every discovered platform
// when labels is empty. Labels are looked up in an explicit platform list
// first; an unknown label is an error.
func Select(cfg *types.Config, labels []string) ([]types.Platform, error) {
	if len(cfg.Platforms) > 0 && len(labels) > 0 {
		out := make([]types.Platform, 0, len(labels))
		for _, l := range labels {
			p, err := cfg.ResolvePlatform(strings.TrimSpace(l))
			if err != nil {
				return nil, err
			}
			out = append(out, *p)
		}
		return out, nil
	}

	all, err := Discover(cfg)
	if err != nil {
		return nil, err
	}
	selected := Filter(all, labels)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no platform matches %s", strings.Join(labels, ", "))
	}
	return selected, nil
}
