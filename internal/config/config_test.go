package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "apps.json", filepath.Base(cfg.Data.Path))
	assert.Equal(t, "apps-list.md", filepath.Base(cfg.Export.Path))
	// The export lands alongside the data file by default.
	assert.Equal(t, filepath.Dir(cfg.Data.Path), filepath.Dir(cfg.Export.Path))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Data:   DataConfig{Path: "/data/apps.json"},
		Export: ExportConfig{Path: "/data/export.md"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  path: /elsewhere/apps.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/apps.json", cfg.Data.Path)
	assert.Equal(t, DefaultConfig().Export.Path, cfg.Export.Path)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Data:   DataConfig{Path: filepath.Join(dir, "a", "apps.json")},
		Export: ExportConfig{Path: filepath.Join(dir, "b", "apps-list.md")},
	}

	require.NoError(t, cfg.EnsureDirectories())

	for _, p := range []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
