package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestFirstPositive(t *testing.T) {
	assert.Equal(t, 2, firstPositive(2, 5))
	assert.Equal(t, 5, firstPositive(0, 5))
	assert.Equal(t, 0, firstPositive(0, 0))
}

func TestResolveConfig_MissingImplicitFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("TAILORCV_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	cfg, err := resolveConfig("", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 3, cfg.MaxAttempts)
}

func TestResolveConfig_ExplicitMissingFileErrors(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())
	assert.Error(t, err)
}

func TestResolveConfig_FileMergedOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider": "anthropic"}`), 0644))

	cfg, err := resolveConfig(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 3, cfg.MaxAttempts, "defaults still fill unset fields")
}

func TestResolveConfig_InvalidFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider": "grok"}`), 0644))

	_, err := resolveConfig(path, zap.NewNop())
	assert.Error(t, err)
}
