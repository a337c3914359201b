package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/game"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/scene"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/scene/playing"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/scene/title"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

var (
	flagWatch  bool
	flagRecord string
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window and play from level 1.

Controls:
  Arrows/A/D - Move
  Space/W    - Jump (again in the air to double jump)
  X          - Shoot
  P/Esc      - Pause
  R          - Restart (after game over or winning)
  T          - Chat
  F5         - Save recording (with --record)

With --watch, edits to the --config file are applied while playing.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --config file when it changes")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (0 = config value)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	seed := resolveSeed()

	opts := []playing.Option{playing.WithLogger(logger)}
	if flagRecord != "" {
		opts = append(opts, playing.WithRecording(flagRecord))
	}

	if flagWatch {
		if flagConfig == "" {
			return errors.New("--watch requires --config")
		}
		w, err := config.NewWatcher(flagConfig)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", flagConfig, err)
		}
		defer func() { _ = w.Close() }()

		reloads := make(chan *config.GameConfig, 1)
		go reloadLoop(w.Events, w.Errors, flagConfig, reloads, logger)
		opts = append(opts, playing.WithReloads(reloads))
		logger.Info("watching config", "file", flagConfig)
	}

	start := func() scene.Scene { return playing.New(cfg, seed, opts...) }
	d := cfg.Display
	g := game.New(title.New(start, &playing.Keyboard{}, d.ScreenWidth, d.ScreenHeight), d.ScreenWidth, d.ScreenHeight)
	defer g.Close()

	scale := d.Scale
	if flagScale > 0 {
		scale = flagScale
	}
	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle("Supar Mayro 3")
	ebiten.SetTPS(d.Framerate)

	return ebiten.RunGame(g)
}

// reloadLoop parses path each time it changes and offers the result on out.
// Only the newest config is kept when the game has not picked up the last one.
// out is closed when events is closed.
func reloadLoop(events <-chan string, errs <-chan error, path string, out chan *config.GameConfig, logger *log.Logger) {
	defer close(out)

	want := filepath.Clean(path)
	for {
		select {
		case name, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(name) != filepath.Base(want) {
				continue
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				logger.Warn("config reload failed", "err", err)
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- cfg
			logger.Info("config reloaded", "file", path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("config watcher", "err", err)
		}
	}
}
