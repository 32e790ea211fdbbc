package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/platform/tui"
	"github.com/vovakirdan/stagequiz/internal/quiz"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [word|math]",
	Short: "Play a game",
	Long: `Start a game in this terminal. Without a mode the mode menu is shown.

Controls:
  Up/Down, 1/2 - Pick a mode
  Enter        - Select / submit answer
  Tab          - Hint (words only)
  R            - Retry after an error
  Esc          - Back to the mode menu
  Ctrl+C       - Quit

Difficulty options (time per question):
  easy   - 3 minutes
  normal - 2 minutes
  hard   - 1 minute

Examples:
  stagequiz play
  stagequiz play word
  stagequiz play math --difficulty hard
  stagequiz play word --words ./animals.txt --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	var mode quiz.Mode
	if len(args) == 1 {
		m, err := quiz.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mode = m
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, pool, err := loadRules(flagDifficulty)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first frame
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = rc.ResolveSeed()

	logger.Info("starting", "mode", mode, "seed", rc.Seed, "words", len(pool), "question_seconds", cfg.Timer.QuestionSeconds)

	runErr := tui.Run(newBuilder(cfg, pool, rc.Seed, logger), tui.Options{
		Session:   cfg.Session(),
		Runtime:   rc,
		Logger:    logger,
		StartMode: mode,
	})
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
