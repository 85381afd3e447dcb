package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/find-the-mouse/internal/game"
	"github.com/vovakirdan/find-the-mouse/internal/platform/tui"
	"github.com/vovakirdan/find-the-mouse/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best sessions",
	Long: `Display the best finished sessions and overall statistics.

Examples:
  mouse scores
  mouse scores --limit 20
  mouse scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening history database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	sessions, err := store.TopSessions(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving sessions: %w", err)
	}

	fmt.Println("High Scores - Find The Mouse")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mouse play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Streak", "Games", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-6d  %-6d  %-5d  %s\n", i+1, s.Score, s.BestStreak, s.Games, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if st, err := store.Stats(); err == nil && st.GamesPlayed > 0 {
		fmt.Printf("Games: %d, won %d (%.0f%%), last played %s\n",
			st.GamesPlayed, st.GamesWon, st.WinRate()*100, st.LastPlayed.Format("2006-01-02 15:04"))
		fmt.Print("Mouse seen under card:")
		for card := range game.CardCount {
			fmt.Printf("  %d:%d", card+1, st.MouseAt[card])
		}
		fmt.Println()
	}
	return nil
}
