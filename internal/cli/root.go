package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

// rootBinds maps config keys to the persistent flags.
var rootBinds = map[string]string{
	"log.level":  "log-level",
	"log.format": "log-format",
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper board engine with HTTP and terminal hosts",
	Long: `Minesweeper board engine.

Examples:
  minesweeper serve --addr :8080
  minesweeper play --rows 9 --columns 9 --bombs 10
  minesweeper deal --rows 16 --columns 30 --bombs 99 --seed 42`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ./minesweeper.yaml if present)")
	pf.StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	pf.StringVar(&logFormat, "log-format", "text", "text|json")
}

// Execute runs the root command.
func Execute() error { return rootCmd.ExecuteContext(context.Background()) }

// load resolves config for cmd, merging the root binds with the command's own.
func load(cmd *cobra.Command, binds map[string]string) (*config.Config, *logrus.Logger, error) {
	all := make(map[string]string, len(rootBinds)+len(binds))
	for k, v := range rootBinds {
		all[k] = v
	}
	for k, v := range binds {
		all[k] = v
	}
	cfg, err := config.Load(configPath, cmd.Flags(), all)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// gameBinds are shared by commands that take board flags.
var gameBinds = map[string]string{
	"game.rows":    "rows",
	"game.columns": "columns",
	"game.bombs":   "bombs",
	"game.seed":    "seed",
}

func addGameFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("rows", 8, "number of rows")
	f.Int("columns", 5, "number of columns")
	f.Int("bombs", 6, "number of bombs")
	f.Int64("seed", 0, "random seed (0 = time based)")
}
