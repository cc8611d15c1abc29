// miniarcade is a small 2D arcade runtime played in the terminal.
//
// Usage:
//
//	miniarcade list              - List available games
//	miniarcade play <game>       - Play a game
//	miniarcade menu              - Start menu to pick games interactively
//	miniarcade serve             - Start SSH server for remote play
//	miniarcade scores <game>     - Show best sessions for a game
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default from config: 60)
//	--seed <value>  - RNG seed for reproducible gameplay
//	--db <path>     - Session database path (default: ~/.miniarcade/scores.db)
//	--config <path> - Custom engine config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mini-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/mini-arcade/internal/games/pong"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "miniarcade",
	Short: "Mini Arcade - retro games in your terminal",
	Long: `Mini Arcade is a terminal-based game runtime with a small
collection of built-in games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View recorded sessions

Examples:
  miniarcade list
  miniarcade play pong
  miniarcade menu
  miniarcade serve --ssh :2222
  miniarcade scores pong`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
