// root.go
//
// Command wiring for the wordler binary.
// Responsibilities:
//   - Load configuration (.env + environment) and apply flag overrides.
//   - Configure the global zerolog logger.
//   - Load the dictionary once and hand it to the subcommands.
//
// Subcommands: play, eval, assist, stats.

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordler/internal/config"
	"github.com/robalobadob/wordler/internal/game"
	"github.com/robalobadob/wordler/internal/words"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg  config.Config
	dict *game.Dictionary

	wordsFile   string
	logLevel    string
	maxAttempts int
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wordler",
		Short:         "Play, assist with and benchmark Wordle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.wordsFile, "words", "", "word list (.csv with word,count columns, or one word per line); overrides WORDS_FILE")
	pf.StringVar(&a.logLevel, "log-level", "", "log level; overrides LOG_LEVEL")
	pf.IntVar(&a.maxAttempts, "max-attempts", 0, "guesses per game; overrides MAX_ATTEMPTS")

	root.AddCommand(newPlayCmd(a), newEvalCmd(a), newAssistCmd(a), newStatsCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.wordsFile != "" {
		cfg.WordsFile = a.wordsFile
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.maxAttempts > 0 {
		cfg.MaxAttempts = a.maxAttempts
	}
	config.SetupLogging(cfg, os.Stderr)
	a.cfg = cfg

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		return err
	}
	a.dict = dict
	log.Debug().Str("cmd", cmd.Name()).Int("words", dict.Len()).Msg("dictionary ready")
	return nil
}

func (a *app) newSession() *game.Session {
	return game.NewSession(a.dict, game.WithMaxAttempts(a.cfg.MaxAttempts))
}
