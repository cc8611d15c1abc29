package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Open a menu to pick and play games interactively.

Finishing or quitting a game returns to the menu; Tab opens the
scoreboard. Quit from the menu with Q.`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	eng, rt, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for {
		result, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			store := openStore(eng.DBPath)
			goBack, sbErr := tui.RunScoreboard(store, int(rt.Width), int(rt.Height))
			if store != nil {
				store.Close()
			}
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				os.Exit(1)
			}
			if !goBack {
				return
			}

		case result.SceneID != "":
			if playErr := playScene(result.SceneID, eng, rt); playErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", playErr)
				os.Exit(1)
			}
		}
	}
}
