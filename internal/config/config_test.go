package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jungrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("call_depth_limit: 50\nrepl_echo: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.CallDepthLimit)
	assert.False(t, cfg.ReplEcho)
	assert.Equal(t, Default().MaxImports, cfg.MaxImports)
}

func TestLoadMalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jungrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("call_depth_limit: [this is not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
