// internal/config/config.go
//
// Process configuration read from the environment (and an optional .env
// file). Every field can be overridden by a command-line flag.
//
// Environment variables:
//   LOG_LEVEL=debug|info|warn|error      (default info)
//   LOG_FORMAT=console|json              (default console)
//   WORDS_FILE=/path/to/words.csv        (default: embedded list)
//   MAX_ATTEMPTS=6
//   DAILY_SALT=local_dev_salt
//   EVAL_GAMES=100
//   EVAL_WORKERS=4
//   SEED=0                               (0 = random)

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the wordler binary.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`
	WordsFile   string `env:"WORDS_FILE"`
	MaxAttempts int    `env:"MAX_ATTEMPTS" envDefault:"6"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	EvalGames   int    `env:"EVAL_GAMES" envDefault:"100"`
	EvalWorkers int    `env:"EVAL_WORKERS" envDefault:"4"`
	Seed        uint64 `env:"SEED" envDefault:"0"`
}

// Load reads .env (if present) into the environment, then parses Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads Config from the current environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command can work with.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts)
	}
	if c.EvalWorkers < 1 {
		return fmt.Errorf("EVAL_WORKERS must be at least 1, got %d", c.EvalWorkers)
	}
	if c.EvalGames < 1 {
		return fmt.Errorf("EVAL_GAMES must be at least 1, got %d", c.EvalGames)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// SetupLogging configures the global zerolog logger writing to w.
func SetupLogging(c Config, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
}
