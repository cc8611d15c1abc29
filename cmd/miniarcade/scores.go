package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best sessions for a game",
	Long: `Display the top 10 recorded sessions for the specified game.

Examples:
  miniarcade scores pong
  miniarcade scores bounce`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

// openStore opens the session database, warning instead of failing so
// callers can degrade to no persistence.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		return nil
	}
	return store
}

func runScores(_ *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'miniarcade list' to see available games.")
		os.Exit(1)
	}

	eng, _, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(eng.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.TopSessions(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(sceneID))
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'miniarcade play %s' to set the first high score!\n", sceneID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n",
			i+1, s.Score, s.Duration.Round(time.Second), s.PlayedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, hsErr := store.HighScore(sceneID); hsErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
