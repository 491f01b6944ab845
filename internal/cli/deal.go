package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/viewmodel"
)

func init() {
	dealCmd := &cobra.Command{
		Use:   "deal",
		Short: "Print a fully revealed board for a config and seed",
		Long: `Deal a board and print its layout with every cell revealed.

The same rows, columns, bombs and seed always deal the same board.`,
		RunE: runDeal,
	}
	addGameFlags(dealCmd)
	rootCmd.AddCommand(dealCmd)
}

func runDeal(cmd *cobra.Command, args []string) error {
	cfg, _, err := load(cmd, gameBinds)
	if err != nil {
		return err
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := deal(cfg.Game.Board(), seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Board %dx%d, %d bombs, seed %d:\n%s",
		cfg.Game.Rows, cfg.Game.Columns, cfg.Game.Bombs, seed, board)
	return nil
}

// deal returns the text of a board with every cell shown.
func deal(cfg domain.GameConfig, seed int64) (string, error) {
	g, err := engine.New(cfg, generator.NewShuffleGenerator(), generator.NewRand(seed))
	if err != nil {
		return "", err
	}
	// Revealing a bomb ends the game, which shows every cell.
	grid := g.Grid()
	for _, loc := range grid.Locations() {
		if grid.Cell(loc).IsBomb() {
			if _, err := g.Reveal(loc); err != nil {
				return "", err
			}
			break
		}
	}
	if cfg.Bombs == 0 {
		if _, err := g.Reveal(domain.Location{}); err != nil {
			return "", err
		}
	}
	return viewmodel.Text(g), nil
}
