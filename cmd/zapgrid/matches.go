package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapgrid/zapgrid/internal/storage"
)

var (
	flagMatchLimit  int
	flagMatchPlayer string
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show recent online match results",
	Long: `Display recent online match results stored by the SSH server.

Examples:
  zapgrid matches
  zapgrid matches --limit 5
  zapgrid matches --player alice`,
	Run: runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchLimit, "limit", 10, "Maximum number of matches to show")
	matchesCmd.Flags().StringVar(&flagMatchPlayer, "player", "", "Only show matches involving this session name")
}

func runMatches(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var matches []storage.MatchRecord
	if flagMatchPlayer != "" {
		matches, err = store.PlayerMatchHistory(flagMatchPlayer, flagMatchLimit)
	} else {
		matches, err = store.RecentMatches(flagMatchLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'zapgrid serve' and play an online match to record one.")
		return
	}

	fmt.Println("Recent matches:")
	fmt.Println()
	for _, m := range matches {
		winner := m.WinnerSession
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %s  %s vs %s  %d:%d  winner: %s  (%s, %ds, seed %d)\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Player1Session, m.Player2Session,
			m.Score1, m.Score2,
			winner, m.EndReason, m.Duration, m.Seed)
	}
}
