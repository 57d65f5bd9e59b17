package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "sparsedata", configBaseName)
	assert.Equal(t, "sparsedata.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "SPARSEDATA", envPrefix)
	assert.Equal(t, "multiply.workers", workersConfigKey)
	assert.Equal(t, "output.format", formatConfigKey)
	assert.Equal(t, 1, defaultWorkers)
	assert.Equal(t, formatSparse, defaultFormat)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.in, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	configureLogger(filepath.Join(t.TempDir(), "x.log"), true)
	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, logger())
	assert.True(t, logger().Enabled(t.Context(), slog.LevelDebug))

	configureLogger(filepath.Join(t.TempDir(), "y.log"), false)
	assert.False(t, logger().Enabled(t.Context(), slog.LevelDebug))
}

func TestReadConfig(t *testing.T) {
	prev := viper.ConfigFileUsed()
	t.Cleanup(func() { viper.SetConfigFile(prev) })
	dir := t.TempDir()

	viper.SetConfigFile(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, readConfig())

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("version: 2\n"), 0o600))
	viper.SetConfigFile(good)
	require.NoError(t, readConfig())
	assert.Equal(t, 2, viper.GetInt(configVersionKey))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: [unclosed\n"), 0o600))
	viper.SetConfigFile(bad)
	err := readConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
