package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
	"github.com/vovakirdan/tui-clicker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (classic if omitted).

Controls:
  Mouse      - Click the buttons
  Enter      - Start / resume
  P          - Pause
  S          - Settings (start screen)
  M          - Sound on/off
  +/-        - Bigger/smaller target caption
  ?          - How to play
  Esc        - Quit (asks first)
  Ctrl+C     - Quit immediately

Modes:
  classic    - Your own settings
  quick      - 15 seconds, one decoy, slower moves
  challenge  - 60 seconds, five decoys, small fast target

Examples:
  clicker play
  clicker play quick
  clicker play --config ./my-clicker.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := clicker.ModeClassic
	if len(args) > 0 {
		mode = args[0]
	}

	// Check if mode exists
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'clicker list' to see available modes.")
		os.Exit(1)
	}

	a, err := newApp(logToFile)
	if err != nil {
		fail("%v", err)
	}
	deps := a.deps()

	game, err := deps.NewGame(mode)
	if err != nil {
		a.close(deps)
		fail("creating game: %v", err)
	}

	a.logger.Info("starting", "mode", mode, "session", deps.SessionID)
	runErr := tui.Run(game, deps, a.runtimeConfig())
	a.close(deps)

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
