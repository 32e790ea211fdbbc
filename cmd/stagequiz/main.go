// stagequiz is a terminal quiz: unscramble words or solve arithmetic
// problems, one timed question at a time, stage after stage.
//
// Usage:
//
//	stagequiz play [word|math]      - Play locally (mode menu if omitted)
//	stagequiz serve                 - Start SSH server for remote play
//	stagequiz sample <mode>         - Print a generated batch
//	stagequiz words                 - Show word pool statistics
//	stagequiz words browse          - Browse the word pool interactively
//	stagequiz words import <file>   - Import a word list into a database
//	stagequiz words show            - List words stored in a database
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible questions
//	--config <path>    - Quiz rules YAML
//	--words <path>     - Word list (.txt, .yaml or .db)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stagequiz/internal/config"
	"github.com/vovakirdan/stagequiz/internal/quiz"
	"github.com/vovakirdan/stagequiz/internal/wordpool"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagWords    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stagequiz",
	Short: "Stage Quiz - Unscramble words and solve sums in your terminal",
	Long: `Stage Quiz is a timed terminal quiz. Pick a mode, answer a batch of
questions, and move up a stage: words get longer and sums get harder.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sample   - Print a batch of generated questions
  words    - Inspect and import word lists

Examples:
  stagequiz play
  stagequiz play math --difficulty hard
  stagequiz serve --ssh :2222
  stagequiz sample word --stage 4
  stagequiz words import ./animals.txt --db ./words.db`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to quiz config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list (.txt, .yaml, .db)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(wordsCmd)
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// fileLogger logs to --log-file, or nowhere when unset. The returned
// function closes the file.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "stagequiz")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// loadRules resolves the quiz config, difficulty preset and word pool.
func loadRules(difficulty string) (config.QuizConfig, wordpool.Pool, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyPreset(&cfg, preset)

	pool, err := wordpool.Resolve(flagWords, cfg.Words.List)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, pool, nil
}

// newBuilder creates a question builder seeded from seed.
func newBuilder(cfg config.QuizConfig, pool wordpool.Pool, seed int64, logger *log.Logger) *quiz.Builder {
	rng := rand.New(rand.NewSource(seed))
	return cfg.NewBuilder(rng, pool.Strings(), quiz.WithLogger(logger))
}
