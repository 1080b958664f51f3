package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
jobs = 4
scope = "cwd"
strict = true
lock = false
`)
	cfg, err := Parse(data, "inline")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, ScopeWorkingDir, cfg.Scope)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Lock)
	// Keys that are not set keep their defaults.
	assert.Equal(t, DefaultPattern, cfg.Pattern)
	assert.Equal(t, PromptLine, cfg.Prompt)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("workers = 3\n"), "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inline")
}

func TestParseRejectsSyntaxErrors(t *testing.T) {
	_, err := Parse([]byte("jobs = \n"), "inline")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestParseValidates(t *testing.T) {
	_, err := Parse([]byte("jobs = -2\n"), "inline")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingRequiredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := Load(path, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("prompt = \"form\"\nlog_level = \"debug\"\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, PromptForm, cfg.Prompt)
	assert.Equal(t, "debug", cfg.LogLevel)
}
