// Package cli wires configuration, logging and the word list into the
// `play` (terminal) and `serve` (HTTP) commands.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

// app is the state shared by subcommands after PersistentPreRunE.
type app struct {
	envFiles []string
	logLevel string
	cfg      config.Config
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the five letter word in six tries",
		Long: `wordle runs Wordle rounds either interactively in the terminal (play)
or as a JSON HTTP service where every game id is an independent round (serve).

Configuration is read from the environment and an optional .env file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFiles...)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default .env if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (env: LOG_LEVEL)")

	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging configures the global zerolog logger.
// Console output is used for interactive sessions, JSON otherwise.
func setupLogging(level string, w io.Writer, console bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// loadWords builds the word list from the configured files or the embedded defaults.
func (a *app) loadWords(answers, allowed string) (*words.List, error) {
	if answers == "" {
		answers = a.cfg.AnswersFile
	}
	if allowed == "" {
		allowed = a.cfg.AllowedFile
	}
	list, err := words.Load(answers, allowed)
	if err != nil {
		return nil, err
	}
	na, ng := list.Stats()
	log.Debug().Int("answers", na).Int("allowed", ng).Msg("word lists loaded")
	return list, nil
}
