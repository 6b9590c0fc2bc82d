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
		"api_key": "sk-test",
		"organization": "org-123",
		"base_url": "https://llm.internal/v1",
		"default_template": "modern"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "org-123", cfg.Organization)
	assert.Equal(t, "https://llm.internal/v1", cfg.BaseURL)
	assert.Equal(t, "modern", cfg.DefaultTemplate)
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

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_UnknownTemplate(t *testing.T) {
	cfg := &Config{DefaultTemplate: "gothic"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gothic")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:            8080,
		APIKey:          "sk-test",
		DefaultTemplate: "professional",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		APIKey: "sk-from-flag",
	}

	defaults := Config{
		Port:            8080,
		APIKey:          "sk-from-file",
		Organization:    "org-file",
		BaseURL:         "https://llm.internal/v1",
		Model:           "gpt-4",
		DefaultTemplate: "minimal",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit value wins
	assert.Equal(t, "sk-from-flag", merged.APIKey)

	// Empty fields fall back to defaults
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "org-file", merged.Organization)
	assert.Equal(t, "https://llm.internal/v1", merged.BaseURL)
	assert.Equal(t, "gpt-4", merged.Model)
	assert.Equal(t, "minimal", merged.DefaultTemplate)
}

func TestMergeWithDefaults_AllSet(t *testing.T) {
	cfg := Config{
		Port:            9000,
		APIKey:          "sk-a",
		Organization:    "org-a",
		BaseURL:         "https://a.example/v1",
		Model:           "gpt-4o",
		DefaultTemplate: "executive",
	}

	merged := cfg.MergeWithDefaults(Config{Port: 8080, APIKey: "sk-b"})
	assert.Equal(t, cfg, merged)
}
