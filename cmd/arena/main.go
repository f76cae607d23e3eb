package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/splitshot/internal/application/game"
	"github.com/younwookim/splitshot/internal/application/replay"
	"github.com/younwookim/splitshot/internal/application/scene/playing"
	"github.com/younwookim/splitshot/internal/application/system"
	"github.com/younwookim/splitshot/internal/application/termview"
	"github.com/younwookim/splitshot/internal/infrastructure/config"
	"github.com/younwookim/splitshot/internal/relay"
)

const (
	viewWindow   = "window"
	viewTerm     = "term"
	viewHeadless = "headless"
)

type options struct {
	arena    string
	record   string
	replay   string
	view     string
	relayURL string
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.arena, "arena", "default", "Arena to load (configs/arenas/<name>.json)")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recorded session")
	flag.StringVar(&opts.view, "view", viewWindow, "Output: window, term or headless")
	flag.StringVar(&opts.relayURL, "relay", "", "Relay websocket URL (e.g., ws://localhost:8080/ws)")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("arena stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	var data *replay.ReplayData
	if opts.replay != "" {
		d, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		data = d
		if d.Arena != "" {
			opts.arena = d.Arena
		}
	}

	// Load configurations using embedded filesystem
	cfg, err := config.NewFSLoader(configFS, "configs").LoadAll(opts.arena)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch opts.view {
	case viewWindow:
		return runWindow(ctx, cfg, opts, data, logger)
	case viewTerm:
		return runTerm(ctx, cfg, data, logger)
	case viewHeadless:
		if data == nil {
			return errors.New("headless view needs -replay")
		}
		return runHeadless(cfg, data, logger)
	default:
		return fmt.Errorf("unknown view %q", opts.view)
	}
}

func runWindow(ctx context.Context, cfg *config.GameConfig, opts options, data *replay.ReplayData, logger *slog.Logger) error {
	sceneOpts := playing.Options{
		RecordPath: opts.record,
		Replay:     data,
		Logger:     logger,
	}

	if opts.relayURL != "" {
		client, err := relay.Dial(ctx, opts.relayURL, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		go func() {
			if err := client.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("relay disconnected", "err", err)
			}
		}()
		sceneOpts.Relay = client
	}

	scn, err := playing.New(cfg, sceneOpts)
	if err != nil {
		return err
	}

	w, h := scn.Layout(0, 0)
	g := game.New(scn, w, h)
	return g.Run("splitshot - "+cfg.Arena.Name, cfg.Tuning.Display.TPS, float64(cfg.Tuning.Display.Scale))
}

func runTerm(ctx context.Context, cfg *config.GameConfig, data *replay.ReplayData, logger *slog.Logger) error {
	world, err := system.LoadArena(cfg.Arena, &cfg.Tuning.Body)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	viewer := termview.NewViewer(screen, system.NewSimulation(cfg.Tuning), world, logger)
	if data == nil {
		return viewer.Run(ctx, viewer.KeyboardIntent)
	}
	return viewer.Run(ctx, replay.NewReplayer(*data).GetIntent)
}

func runHeadless(cfg *config.GameConfig, data *replay.ReplayData, logger *slog.Logger) error {
	world, err := system.LoadArena(cfg.Arena, &cfg.Tuning.Body)
	if err != nil {
		return err
	}

	sim := system.NewSimulation(cfg.Tuning, system.WithLogger(logger))
	ticks := replay.NewReplayer(*data).Run(sim, world, nil)

	body := world.Body.State()
	logger.Info("replay finished",
		"arena", cfg.Arena.ID,
		"ticks", ticks,
		"x", body.X,
		"y", body.Y,
		"health", body.Health,
		"projectiles", world.CountProjectiles(),
	)
	return nil
}
