// mayro is a side-scrolling platformer with generated levels.
//
// Usage:
//
//	mayro play               - Play from level 1
//	mayro generate           - Print a generated level to the terminal
//	mayro replay <file>      - Re-simulate a recorded run without a window
//
// Global flags:
//
//	--seed <value>       - RNG seed (0 = random based on time)
//	--config <path>      - Game config YAML (default: embedded configs/game.yaml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string

	logger = log.Default()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mayro",
	Short: "Supar Mayro 3 - a platformer with generated levels",
	Long: `Supar Mayro 3 is a side-scrolling platformer. Every level is generated
from a seed: run to the flag, stomp what walks, and beat the boss behind
the door every third level.

Examples:
  mayro play
  mayro play --seed 42 --record run.json
  mayro play --config ./game.yaml --watch
  mayro generate --level 3 --seed 42
  mayro replay run.json`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(replayCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = newLogger(cmd.ErrOrStderr(), level)
	return nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "mayro",
		ReportTimestamp: true,
	})
	l.SetLevel(level)
	return l
}

// loadConfig reads path, or the embedded config when path is empty
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}

func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
