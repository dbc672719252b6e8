package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tgrep", configBaseName)
	assert.Equal(t, "tgrep.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "search.parallel", searchParallelKey)
	assert.Equal(t, "search.debounce_ms", searchDebounceKey)
	assert.Equal(t, "search.exclude", searchExcludeKey)
	assert.Equal(t, 50, defaultDebounceMs)
	assert.Equal(t, "TGREP", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_Verbose(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	configureLogger(filepath.Join(t.TempDir(), "tgrep.log"), true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}

func TestConfigCmd_PrintsEffectiveSettings(t *testing.T) {
	viper.Set(searchHiddenKey, true)
	t.Cleanup(func() { viper.Set(searchHiddenKey, defaultHidden) })

	cmd := newConfigCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var got settings
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, currentConfigVersion, got.Version)
	assert.True(t, got.Search.Hidden)
	assert.Equal(t, viper.GetInt(searchParallelKey), got.Search.Parallel)
	assert.Equal(t, defaultMaxFileSize, got.Search.MaxFileSize)
}
