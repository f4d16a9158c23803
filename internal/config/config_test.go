package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "GRI", cfg.Report.Standard)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 3000, cfg.AI.MaxEvalChars)
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
report:
  standard: CSRD
ai:
  provider: gemini
  model: gemini-2.5-flash
  max_eval_chars: 5000
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "CSRD", cfg.Report.Standard)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, 5000, cfg.AI.MaxEvalChars)
	// Untouched sections keep their defaults.
	assert.Equal(t, "resonate.db", cfg.Report.Database)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  api_key: from-file\n"), 0644))

	t.Setenv("RESONATE_API_KEY", "from-env")
	t.Setenv("RESONATE_AI_PROVIDER", "gemini")
	t.Setenv("RESONATE_STANDARD", "TCFD")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "TCFD", cfg.Report.Standard)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report: [not: valid"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
