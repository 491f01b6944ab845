package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"svw.info/minesweeper/internal/domain"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Game   GameConfig   `mapstructure:"game"`
}

type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig is the board used when a request or flag does not pick one.
// Seed 0 means a fresh time based seed per game. MaxCells caps the boards
// clients may ask the server for; 0 disables the cap.
type GameConfig struct {
	Rows     int   `mapstructure:"rows"`
	Columns  int   `mapstructure:"columns"`
	Bombs    int   `mapstructure:"bombs"`
	Seed     int64 `mapstructure:"seed"`
	MaxCells int   `mapstructure:"max_cells"`
}

// Board returns the game dimensions as a domain config.
func (g GameConfig) Board() domain.GameConfig {
	return domain.GameConfig{Rows: g.Rows, Columns: g.Columns, Bombs: g.Bombs}
}

// SeedPtr returns nil when no fixed seed is configured.
func (g GameConfig) SeedPtr() *int64 {
	if g.Seed == 0 {
		return nil
	}
	s := g.Seed
	return &s
}

// DefaultMaxCells bounds served boards unless configured otherwise.
const DefaultMaxCells = 10000

// EnvPrefix namespaces environment overrides, e.g. MINESWEEPER_SERVER_ADDR.
const EnvPrefix = "MINESWEEPER"

func setDefaults(v *viper.Viper) {
	def := domain.DefaultConfig()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("game.rows", def.Rows)
	v.SetDefault("game.columns", def.Columns)
	v.SetDefault("game.bombs", def.Bombs)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_cells", DefaultMaxCells)
}

// Load resolves configuration with precedence flags > env > file > defaults.
// path may be empty, in which case ./minesweeper.yaml is used if present.
// binds maps config keys to flags; unset flags do not override lower layers.
func Load(path string, flags *pflag.FlagSet, binds map[string]string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("minesweeper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range binds {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
