package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Quitting a game returns you to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Score history
  Q            - Quit

Examples:
  clicker menu
  clicker menu --fps 30
  clicker menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := newApp(logToFile)
	if err != nil {
		fail("%v", err)
	}
	deps := a.deps()
	defer a.close(deps)

	cfg := a.runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(deps.Store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(deps.Store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		game, err := deps.NewGame(menuResult.ModeID)
		if err != nil {
			a.logger.Error("cannot start mode", "mode", menuResult.ModeID, "err", err)
			continue
		}
		// The start notice is only worth showing once.
		deps.Options.Notice = ""

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		a.logger.Info("starting", "mode", menuResult.ModeID, "session", deps.SessionID)
		if err := tui.Run(game, deps, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
