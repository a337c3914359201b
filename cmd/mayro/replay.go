package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Run a recorded input file through the simulation without opening a window
and print where the run ended. The recorded seed is used, so the result
matches the original session as long as the starting config is the same.
Configs hot-reloaded during the recording are replayed at their frames.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	res, err := replay.Run(cfg, *data, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:   %d\n", data.Seed)
	fmt.Fprintf(out, "Frames: %d\n", res.Frames)
	fmt.Fprintf(out, "Level:  %d\n", res.Level)
	fmt.Fprintf(out, "Score:  %d\n", res.Score)
	fmt.Fprintf(out, "Lives:  %d\n", res.Lives)
	fmt.Fprintf(out, "X:      %.1f\n", res.PlayerX)
	fmt.Fprintf(out, "State:  %s\n", res.State)
	return nil
}
