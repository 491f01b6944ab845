package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/minesweeper/internal/adapters/tui"
	"svw.info/minesweeper/internal/generator"
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE:  runPlay,
	}
	addGameFlags(playCmd)
	playCmd.Flags().String("log-file", "", "append logs to this file while playing (default: drop them)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, log, err := load(cmd, gameBinds)
	if err != nil {
		return err
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logPath, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return err
	}
	closer, err := redirectLog(log, logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := tui.New(screen, cfg.Game.Board(), generator.NewShuffleGenerator(), generator.NewRand(seed), log)
	if err != nil {
		return err
	}
	return app.Run()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// redirectLog keeps log output off the terminal tcell draws on. With a path
// the log is appended to that file, otherwise it is dropped.
func redirectLog(log *logrus.Logger, path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
