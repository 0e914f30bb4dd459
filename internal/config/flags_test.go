package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-ui", "tui",
		"-no-color",
		"-no-clear",
		"-delimiter", ";",
		"-export-format", "sqlite",
		"-log", "/tmp/clients.log",
		"-log-level", "info",
		"-config", "/etc/bank-clients.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.UI.Mode)
	assert.True(t, cfg.UI.NoColor)
	assert.True(t, cfg.UI.NoClearScreen)
	assert.Equal(t, ";", cfg.Export.Delimiter)
	assert.Equal(t, "sqlite", cfg.Export.Format)
	assert.Equal(t, "/tmp/clients.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/etc/bank-clients.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "localhost:8080"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
