package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the score history of a mode",
	Long: `Display the best rounds recorded for the specified mode,
or the latest ones with --recent.

Examples:
  clicker scores classic
  clicker scores quick --recent --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest rounds instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to list")
}

func runScores(_ *cobra.Command, args []string) {
	mode := args[0]

	// Check if mode exists
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'clicker list' to see available modes.")
		os.Exit(1)
	}

	title := mode
	for _, m := range registry.List() {
		if m.ID == mode {
			title = m.Title
		}
	}

	a, err := newApp(logToStderr)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(a.dbPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	heading := "High Scores"
	var scores []storage.ScoreEntry
	if flagRecent {
		heading = "Recent Rounds"
		scores, err = store.RecentScores(mode, flagLimit)
	} else {
		scores, err = store.TopScores(mode, flagLimit)
	}
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'clicker play %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7s  %s\n", i+1, entry.Score, fmt.Sprintf("%ds", entry.Duration), dateStr)
	}

	fmt.Println()
	if stats, err := store.GetModeStats(mode); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
