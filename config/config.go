package config

import (
	"errors"
	"fmt"
	"strings"

	"boardgames/agent"
	"boardgames/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Game       string `mapstructure:"game"`
	Experiment string `mapstructure:"experiment"`
	White      string `mapstructure:"white"`
	Black      string `mapstructure:"black"`
	Games      int    `mapstructure:"games"`
	MaxTurns   int    `mapstructure:"max_turns"`
	Seed       uint64 `mapstructure:"seed"`
	LogLevel   string `mapstructure:"log_level"`
	Listen     string `mapstructure:"listen"`
	OutputDir  string `mapstructure:"output_dir"`
}

// Flags registers the command line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("game", "chess", "game to play: chess or checkers")
	fs.String("experiment", "self_play", "experiment to run: self_play, ladder or pruning")
	fs.String("white", "hard", "white agent difficulty: easy, medium or hard")
	fs.String("black", "easy", "black agent difficulty: easy, medium or hard")
	fs.Int("games", meta.GAMES, "number of self-play games")
	fs.Int("max-turns", meta.MAX_TURNS, "moves after which a game is abandoned")
	fs.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	fs.String("log-level", "info", "zerolog level")
	fs.String("listen", ":8080", "agent server listen address")
	fs.String("output-dir", "results", "directory for experiment records")
	return fs
}

// Load parses args into fs and resolves the configuration. Flags win over
// BOARDGAMES_* environment variables, which win over the config file.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("boardgames")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.SetDefault(key, f.DefValue)
		if f.Changed {
			v.Set(key, f.Value.String())
		}
	})

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Game != "chess" && c.Game != "checkers" {
		errs = append(errs, fmt.Errorf("unknown game %q", c.Game))
	}
	switch c.Experiment {
	case "self_play", "ladder", "pruning":
	default:
		errs = append(errs, fmt.Errorf("unknown experiment %q", c.Experiment))
	}
	if _, err := agent.ParseDifficulty(c.White); err != nil {
		errs = append(errs, fmt.Errorf("white: %w", err))
	}
	if _, err := agent.ParseDifficulty(c.Black); err != nil {
		errs = append(errs, fmt.Errorf("black: %w", err))
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Difficulties returns the configured white and black tiers.
func (c *Config) Difficulties() (agent.Difficulty, agent.Difficulty) {
	white, _ := agent.ParseDifficulty(c.White)
	black, _ := agent.ParseDifficulty(c.Black)
	return white, black
}
