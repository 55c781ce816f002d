package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.ScreenWidth)
	assert.Equal(t, 800, cfg.ScreenHeight)
	assert.Equal(t, 20, cfg.CellSize)
	assert.Equal(t, BackendJSON, cfg.HistoryBackend)
	assert.Equal(t, "snake_history.json", cfg.HistoryFile)
	assert.Equal(t, 100, cfg.MaxHistory)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SNAKE_HISTORY_BACKEND", "sqlite")
	t.Setenv("SNAKE_LOG_LEVEL", "DEBUG")
	t.Setenv("SNAKE_SEED", "7")
	t.Setenv("SNAKE_MAX_HISTORY", "25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.HistoryBackend)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 25, cfg.MaxHistory)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_CELL_SIZE=25\nSNAKE_HISTORY_FILE=runs.json\n"), 0o644))
	t.Setenv("SNAKE_HISTORY_FILE", "explicit.json")
	t.Cleanup(func() { os.Unsetenv("SNAKE_CELL_SIZE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.CellSize)
	assert.Equal(t, "explicit.json", cfg.HistoryFile, "environment wins over the file")
}

func TestLoadMissingDotenv(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown backend":  {"SNAKE_HISTORY_BACKEND": "redis"},
		"zero cell":        {"SNAKE_CELL_SIZE": "0"},
		"misaligned width": {"SNAKE_SCREEN_WIDTH": "1010"},
		"zero history":     {"SNAKE_MAX_HISTORY": "0"},
		"bad level":        {"SNAKE_LOG_LEVEL": "LOUD"},
		"bad number":       {"SNAKE_SEED": "abc"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
