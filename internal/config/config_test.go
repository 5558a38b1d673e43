package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, 5, cfg.Pipeline.SuppressionFloor)
	assert.Equal(t, 250, cfg.Pipeline.RateQuantumUSD)
	assert.InDelta(t, 0.05, cfg.Pipeline.SentimentStep, 1e-9)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
}

func TestLoadFromFile_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "pulsebuilder.yaml")
	content := `
logging:
  level: debug
pipeline:
  suppression_floor: 7
  workers: 4
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadFromFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Pipeline.SuppressionFloor)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	// untouched fields keep their defaults
	assert.Equal(t, 250, cfg.Pipeline.RateQuantumUSD)
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "pulsebuilder.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("pipeline:\n  suppression_floor: 7\n"), 0644))

	t.Setenv("PULSE_PIPELINE_SUPPRESSION_FLOOR", "9")

	cfg, err := LoadFromFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Pipeline.SuppressionFloor)
}

func TestLoadFromFile_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad log level",
			content: "logging:\n  level: verbose\n",
		},
		{
			name:    "negative rate quantum",
			content: "pipeline:\n  rate_quantum_usd: -250\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			configFile := filepath.Join(dir, "pulsebuilder.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			_, err := LoadFromFile(configFile)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "pulsebuilder.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging: ["), 0644))

	_, err := LoadFromFile(configFile)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.Pipeline.SuppressionFloor)
	assert.Equal(t, "console", cfg.Logging.Output)
}
