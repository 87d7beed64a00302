package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/posters",
		"default_template": "template-3",
		"viewport_width": 1024,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/posters", cfg.DatabaseURL)
	assert.Equal(t, "template-3", cfg.DefaultTemplate)
	assert.Equal(t, 1024, cfg.ViewportWidth)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'port'")

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeValues(t *testing.T) {
	assert.Error(t, (&Config{ExportTimeout: -1}).Validate())
	assert.Error(t, (&Config{ViewportWidth: -100}).Validate())
}

func TestValidate_ChromePathMissing(t *testing.T) {
	cfg := &Config{ChromePath: "/nonexistent/chrome"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chrome binary not found")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Port:            9090,
		DefaultTemplate: "template-2",
	}

	defaults := Config{
		Port:            8080,
		DatabaseURL:     "postgres://localhost/posters",
		DefaultTemplate: "template-1",
		OutputDir:       "out",
		ExportTimeout:   60,
		ViewportWidth:   794,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// explicit values win
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "template-2", merged.DefaultTemplate)

	// empty values fall back
	assert.Equal(t, "postgres://localhost/posters", merged.DatabaseURL)
	assert.Equal(t, "out", merged.OutputDir)
	assert.Equal(t, 60, merged.ExportTimeout)
	assert.Equal(t, 794, merged.ViewportWidth)
}
