package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stagequiz/internal/config"
	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/platform/tui"
	"github.com/vovakirdan/stagequiz/internal/quiz"
	"github.com/vovakirdan/stagequiz/internal/storage"
	"github.com/vovakirdan/stagequiz/internal/wordpool"
)

const defaultWordsDB = "~/.stagequiz/words.db"

var (
	flagWordsDB   string
	flagReplace   bool
	flagShowLimit int
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word pool statistics",
	Long: `Show how many words the active pool has for each length, and which
stages will draw from them.

The pool is --words if given, else words.list from the config, else the
built-in list.

Examples:
  stagequiz words
  stagequiz words --words ./words.db`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

var wordsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the word pool interactively",
	Args:  cobra.NoArgs,
	Run:   runWordsBrowse,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word list into a database",
	Long: `Read words from a .txt or .yaml file and store them in a SQLite
database that --words can point at. Duplicates are skipped.

Examples:
  stagequiz words import ./animals.txt
  stagequiz words import ./animals.yaml --db ./words.db --replace`,
	Args: cobra.ExactArgs(1),
	Run:  runWordsImport,
}

var wordsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List words stored in a database",
	Args:  cobra.NoArgs,
	Run:   runWordsShow,
}

func init() {
	wordsImportCmd.Flags().StringVar(&flagWordsDB, "db", defaultWordsDB, "Path to words database")
	wordsImportCmd.Flags().BoolVar(&flagReplace, "replace", false, "Remove stored words before importing")
	wordsShowCmd.Flags().StringVar(&flagWordsDB, "db", defaultWordsDB, "Path to words database")
	wordsShowCmd.Flags().IntVar(&flagShowLimit, "limit", 50, "Maximum words to list")

	wordsCmd.AddCommand(wordsBrowseCmd)
	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsShowCmd)
}

func runWords(_ *cobra.Command, _ []string) {
	cfg, pool, err := loadRules("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Word pool: %d words\n\n", len(pool))
	fmt.Println(lengthTable(pool.CountByLength(), cfg))
}

// lengthTable lists word counts per length with the first stage whose
// minimum length admits them.
func lengthTable(counts map[int]int, cfg config.QuizConfig) *table.Table {
	words := cfg.QuizWords()

	lengths := make([]int, 0, len(counts))
	for n := range counts {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Length", "Words", "Stages")
	for _, n := range lengths {
		t.Row(strconv.Itoa(n), strconv.Itoa(counts[n]), stageRange(words, n))
	}
	return t
}

// stageRange describes the stages at which words of length n are eligible.
func stageRange(cfg quiz.WordConfig, n int) string {
	if n < cfg.MinLength(1) {
		return "-"
	}
	// Minimum length only grows, so eligibility ends at the first stage
	// whose minimum exceeds n.
	for stage := 1; stage <= 2*(cfg.MaxMinLength-cfg.BaseMinLength)+2; stage++ {
		if cfg.MinLength(stage) > n {
			return fmt.Sprintf("1-%d", stage-1)
		}
	}
	return "all"
}

func runWordsBrowse(_ *cobra.Command, _ []string) {
	_, pool, err := loadRules("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed

	if err := tui.RunWordList(pool.Strings(), rc.ResolveSeed(), rc.ScreenW, rc.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWordsImport(_ *cobra.Command, args []string) {
	pool, err := wordpool.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagWordsDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening words database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReplace {
		if err := store.ClearWords(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	added, err := store.AddWords(pool.Strings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d of %d words into %s\n", added, len(pool), flagWordsDB)
	fmt.Printf("Play with them: stagequiz play word --words %s\n", flagWordsDB)
}

func runWordsShow(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagWordsDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening words database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Entries(flagShowLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No words stored yet.")
		fmt.Println()
		fmt.Println("Run 'stagequiz words import <file>' to add some.")
		return
	}

	counts, err := store.CountByLength()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	total := 0
	for _, c := range counts {
		total += c
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Word", "Length", "Added")
	for _, e := range entries {
		t.Row(e.Word, strconv.Itoa(e.Length), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Printf("Showing %d of %d stored words\n", len(entries), total)
	fmt.Println(t)
}
