package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	ScreenWidth    int        `env:"SNAKE_SCREEN_WIDTH" envDefault:"1000"`
	ScreenHeight   int        `env:"SNAKE_SCREEN_HEIGHT" envDefault:"800"`
	CellSize       int        `env:"SNAKE_CELL_SIZE" envDefault:"20"`
	HistoryBackend string     `env:"SNAKE_HISTORY_BACKEND" envDefault:"json"`
	HistoryFile    string     `env:"SNAKE_HISTORY_FILE" envDefault:"snake_history.json"`
	HistoryDB      string     `env:"SNAKE_HISTORY_DB" envDefault:"snake_history.db"`
	MaxHistory     int        `env:"SNAKE_MAX_HISTORY" envDefault:"100"`
	LogLevel       slog.Level `env:"SNAKE_LOG_LEVEL" envDefault:"INFO"`
	Seed           uint64     `env:"SNAKE_SEED" envDefault:"0"`
}

// Load reads dotenvPath when it exists, then parses the environment.
// Variables already set in the environment win over the file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", dotenvPath, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.CellSize < 1 {
		return fmt.Errorf("SNAKE_CELL_SIZE must be positive, got %d", c.CellSize)
	}
	if c.ScreenWidth < c.CellSize || c.ScreenHeight < c.CellSize {
		return fmt.Errorf("screen %dx%d is smaller than one cell", c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("screen %dx%d is not a multiple of cell size %d", c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.MaxHistory < 1 {
		return fmt.Errorf("SNAKE_MAX_HISTORY must be positive, got %d", c.MaxHistory)
	}
	switch c.HistoryBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown SNAKE_HISTORY_BACKEND %q", c.HistoryBackend)
	}
	return nil
}
