// clicker is a terminal game: click the moving button before time runs out,
// and stay away from the decoys.
//
// Usage:
//
//	clicker list                   - List available modes
//	clicker play [mode]            - Play a mode (default: classic)
//	clicker menu                   - Start menu to pick modes interactively
//	clicker scores <mode>          - Show the score history of a mode
//	clicker settings show|reset    - Inspect or reset the saved settings
//	clicker serve                  - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ctb/scores.db)
//	--home <dir>          - Directory for the settings and high score files
//	--config <path>       - Custom tuning YAML
//	--log-file <path>     - Log destination (default: ~/.ctb/clicker.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-clicker/internal/games/clicker"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagHome     string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicker",
	Short: "Click The Button - a reflex game for your terminal",
	Long: `Click The Button is a terminal game played with the mouse.

Click the blue button as often as you can before the timer runs out.
Every hit makes it smaller. Red decoys cost points.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  scores    - View the score history
  settings  - Show or reset the saved settings
  serve     - Start SSH server for remote play

Examples:
  clicker play
  clicker play challenge
  clicker menu
  clicker scores classic
  clicker serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.ctb/scores.db, env CTB_DB)")
	pf.StringVar(&flagHome, "home", "", "Directory for settings and high score files (env CTB_HOME)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.ctb/clicker.log, env CTB_LOG_FILE)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env CTB_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}
