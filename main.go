package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/history"
	"snake-classic/game/input"
	"snake-classic/game/types"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file loaded before reading the environment")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *envFile, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, envFile string, logOut io.Writer) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	log := history.NewLog(store,
		history.WithMaxEntries(cfg.MaxHistory),
		history.WithLogger(logger),
	)
	log.Load()
	logger.Info("history loaded", "backend", cfg.HistoryBackend, "entries", log.Len())

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("random source seeded", "seed", seed)

	grid := types.Grid{CellSize: cfg.CellSize, Width: cfg.ScreenWidth, Height: cfg.ScreenHeight}
	g := game.NewGame(game.DefaultConfig(grid), log,
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithLogger(logger),
	)

	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Snake Game")
	defer rl.CloseWindow()
	rl.SetTargetFPS(game.UIRefreshRate)
	// Escape is bound to in-game actions.
	rl.SetExitKey(0)

	renderer := ui.NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight)
	translator := input.NewTranslator(cfg.ScreenWidth)

	for !g.Terminated() {
		if rl.WindowShouldClose() || ctx.Err() != nil {
			g.Dispatch(game.Quit{})
			break
		}

		for _, ev := range ui.PollEvents() {
			for _, cmd := range translator.Translate(g, ev) {
				if err := g.Dispatch(cmd); err != nil {
					logger.Error("command failed", "phase", g.Phase().String(), "error", err)
				}
			}
		}
		if err := g.Update(); err != nil {
			logger.Error("update failed", "phase", g.Phase().String(), "error", err)
		}

		renderer.Draw(g)
	}

	logger.Info("exiting", "games", log.Len())
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (history.Store, func(), error) {
	if cfg.HistoryBackend == config.BackendSQLite {
		store, err := history.OpenSQLiteStore(ctx, cfg.HistoryDB)
		if err != nil {
			return nil, nil, fmt.Errorf("opening history database: %w", err)
		}
		return store, func() { store.Close() }, nil
	}
	return history.NewFileStore(cfg.HistoryFile), func() {}, nil
}
