package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/session"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
	"github.com/SpaceTurtle1226/SuparMayro3/internal/infrastructure/preview"
)

var (
	flagLevel    int
	flagVariants int
	flagWidth    int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated level",
	Long: `Generate a level and print it to the terminal.

Legend:
  # ground   B block   | T pipe   ^ v spikes   F flag   D boss door
  o coin     * power-up   = platform   V falling spike   A spike trap
  W boss     lowercase letters and S + are enemies

Examples:
  mayro generate --level 2 --seed 7
  mayro generate --level 3 --variants 3 --width 120`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number to generate")
	generateCmd.Flags().IntVar(&flagVariants, "variants", 1, "Number of variants to print")
	generateCmd.Flags().IntVar(&flagWidth, "width", 0, "Columns to show (0 = whole level)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	seed := resolveSeed()

	store := session.NewStore(system.NewGenerator(cfg, rand.New(rand.NewSource(seed))))
	out := cmd.OutOrStdout()

	bp := store.Get(flagLevel)
	for i := 0; i < max(flagVariants, 1); i++ {
		if i > 0 {
			bp = store.Regenerate(flagLevel)
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, preview.Render(bp, flagWidth))
	}
	logger.Debug("generated", "level", flagLevel, "seed", seed, "variants", flagVariants)
	return nil
}
