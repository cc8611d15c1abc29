package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/game"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  P           - Pause
  R           - Restart (after game over)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Examples:
  miniarcade play pong
  miniarcade play bounce --seed 42
  miniarcade play pong --config ./my-engine.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// loadSetup resolves the engine config and applies flag overrides.
func loadSetup() (config.EngineConfig, core.RuntimeConfig, error) {
	eng, err := config.LoadEngine(flagConfig)
	if err != nil {
		return eng, core.RuntimeConfig{}, err
	}
	if flagFPS > 0 {
		eng.FPS = flagFPS
	}
	if flagSeed != 0 {
		eng.Seed = flagSeed
	}
	if flagDBPath != "" {
		eng.DBPath = flagDBPath
	}

	// Shrink the world to the terminal if it is smaller than the
	// configured window.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w > 0 && w < eng.Window.Width {
			eng.Window.Width = w
		}
		if h > 0 && h < eng.Window.Height {
			eng.Window.Height = h
		}
	}

	rt, err := eng.Runtime()
	if err != nil {
		return eng, rt, err
	}
	return eng, rt, nil
}

// playScene runs one game session and records it. Shared by play and
// the interactive menu.
func playScene(sceneID string, eng config.EngineConfig, rt core.RuntimeConfig) error {
	sc, err := registry.Create(sceneID, rt)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	backend := tui.NewScreenBackend()
	g, err := game.New(game.Config{
		Runtime:       rt,
		Title:         registry.Title(sceneID),
		ScreenshotDir: eng.ScreenshotDir,
	}, backend)
	if err != nil {
		return err
	}
	g.SetScene(sc)

	store, err := storage.Open(eng.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		store = nil // play continues without persistence
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(g, backend, store, sceneID, rt.FPS)
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'miniarcade list' to see available games.")
		os.Exit(1)
	}

	eng, rt, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := playScene(sceneID, eng, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
