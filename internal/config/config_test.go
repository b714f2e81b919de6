package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydehq/gamedesc/internal/types"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gamedesc.yml")

	in := &types.Config{
		Root:   "roms",
		Report: "out/report.csv",
		Names:  map[string]string{"psx": "PlayStation"},
	}
	require.NoError(t, Save(path, in))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "roms", cfg.Root)
	assert.Equal(t, "gamelist.xml", cfg.Descriptor, "default applied")
	assert.Equal(t, "out/report.csv", cfg.Report)
	assert.Equal(t, "PlayStation", cfg.Names["psx"])

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.BaseDir)
	assert.Equal(t, filepath.Join(abs, "roms"), cfg.ResolvePath(cfg.Root))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamedesc.yml")
	require.NoError(t, os.WriteFile(path, []byte("root: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	home := isolateHome(t)

	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.Root)
		assert.Equal(t, GetDefaults().Report, cfg.Report)
	})

	t.Run("global", func(t *testing.T) {
		global, err := GlobalPath()
		require.NoError(t, err)
		require.True(t, filepath.IsAbs(global))
		require.NoError(t, Save(global, &types.Config{Root: "/srv/roms"}))
		t.Cleanup(func() { os.RemoveAll(filepath.Join(home, ".config")) })

		cfg, err := Find(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "/srv/roms", cfg.Root)
	})

	t.Run("local wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Save(filepath.Join(dir, "gamedesc.yml"), &types.Config{Root: "local"}))
		cfg, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.Root)
	})
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, label := range []string{"snes", "Amiga", "empty", "psx"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, label), 0o755))
	}
	for _, label := range []string{"snes", "Amiga", "psx"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, label, "gamelist.xml"), []byte("<gameList/>"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "gamelist.xml"), []byte("<gameList/>"), 0o644))

	cfg := &types.Config{Root: root, Descriptor: "gamelist.xml"}
	platforms, err := Discover(cfg)
	require.NoError(t, err)

	var labels []string
	for _, p := range platforms {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"Amiga", "psx", "snes"}, labels)
	assert.Equal(t, filepath.Join(root, "psx", "gamelist.xml"), platforms[1].Path)

	assert.Len(t, Filter(platforms, []string{"PSX", "amiga"}), 2)
	assert.Len(t, Filter(platforms, nil), 3)
	assert.Empty(t, Filter(platforms, []string{"nes"}))
}

func TestDiscover_ExplicitPlatforms(t *testing.T) {
	cfg := &types.Config{
		BaseDir:   "/base",
		Platforms: []types.Platform{{Label: "psx", Path: "lists/psx.xml"}},
	}
	platforms, err := Discover(cfg)
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	assert.Equal(t, filepath.Join("/base", "lists/psx.xml"), platforms[0].Path)
}

func TestDiscover_NothingFound(t *testing.T) {
	root := t.TempDir()
	_, err := Discover(&types.Config{Root: root, Descriptor: "gamelist.xml"})

	var none types.ErrNoPlatforms
	require.True(t, errors.As(err, &none))
	assert.Equal(t, root, none.Root)
}

func TestSelect(t *testing.T) {
	root := t.TempDir()
	for _, label := range []string{"psx", "snes"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, label), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, label, "gamelist.xml"), []byte("<gameList/>"), 0o644))
	}
	cfg := &types.Config{Root: root, Descriptor: "gamelist.xml"}

	t.Run("discovered", func(t *testing.T) {
		platforms, err := Select(cfg, []string{"SNES"})
		require.NoError(t, err)
		require.Len(t, platforms, 1)
		assert.Equal(t, "snes", platforms[0].Label)

		all, err := Select(cfg, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		_, err = Select(cfg, []string{"nes"})
		assert.ErrorContains(t, err, "nes")
	})

	t.Run("explicit list", func(t *testing.T) {
		explicit := &types.Config{
			BaseDir: "/base",
			Platforms: []types.Platform{
				{Label: "psx", Path: "lists/psx.xml"},
				{Label: "Amiga", Path: "/abs/amiga.xml"},
			},
		}
		platforms, err := Select(explicit, []string{"amiga", " PSX "})
		require.NoError(t, err)
		require.Len(t, platforms, 2)
		assert.Equal(t, "/abs/amiga.xml", platforms[0].Path)
		assert.Equal(t, filepath.Join("/base", "lists/psx.xml"), platforms[1].Path)

		_, err = Select(explicit, []string{"snes"})
		assert.ErrorContains(t, err, "snes")
	})
}
