package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/quiz"
)

var (
	flagSampleStage int
	flagSampleCount int
)

var sampleCmd = &cobra.Command{
	Use:   "sample <word|math>",
	Short: "Print a batch of generated questions",
	Long: `Generate one batch for a stage and print prompts with answers.
Useful for checking a word list or tuning the arithmetic rules.

Examples:
  stagequiz sample word
  stagequiz sample math --stage 7 --count 20
  stagequiz sample word --words ./animals.txt --seed 1`,
	Args: cobra.ExactArgs(1),
	Run:  runSample,
}

func init() {
	sampleCmd.Flags().IntVar(&flagSampleStage, "stage", 1, "Stage to generate for")
	sampleCmd.Flags().IntVar(&flagSampleCount, "count", 0, "Number of questions (0 = batch size from config)")
}

func runSample(_ *cobra.Command, args []string) {
	mode, err := quiz.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "stagequiz")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, pool, err := loadRules("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	count := flagSampleCount
	if count <= 0 {
		count = cfg.Batch.Size
	}

	rc := core.RuntimeConfig{Seed: flagSeed}
	builder := newBuilder(cfg, pool, rc.ResolveSeed(), logger)

	questions, err := builder.Build(context.Background(), mode, flagSampleStage, count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Prompt", "Answer")
	for i, q := range questions {
		t.Row(strconv.Itoa(i+1), q.Prompt, q.Answer)
	}

	fmt.Printf("%s - stage %d\n", mode.Title(), flagSampleStage)
	fmt.Println(t)
}
