package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or reset the saved settings",
	Long: `Inspect or reset the settings file in the home directory.

Settings are edited in game: press S on the start screen.

Examples:
  clicker settings show
  clicker settings reset
  clicker settings show --home /tmp/ctb`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect",
	Args:  cobra.NoArgs,
	Run:   runSettingsShow,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the settings file with the defaults",
	Args:  cobra.NoArgs,
	Run:   runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	a, err := newApp(logToStderr)
	if err != nil {
		fail("%v", err)
	}
	s := a.settings

	fmt.Printf("Settings file: %s\n", a.settingsPath)
	if _, statErr := os.Stat(a.settingsPath); statErr != nil {
		fmt.Println("(not saved yet, showing defaults)")
	}
	fmt.Println()
	fmt.Printf("  %-26s %d\n", "Game duration (s)", s.GameDurationSeconds)
	fmt.Printf("  %-26s %d\n", "Fake buttons", s.NumFakeButtons)
	fmt.Printf("  %-26s %d\n", "Move interval (ms)", s.MoveIntervalMs)
	fmt.Printf("  %-26s %v\n", "Sound", onOff(s.SoundEnabled))
	fmt.Printf("  %-26s %dx%d\n", "Target start size (px)", s.MainButtonStartWidth, s.MainButtonStartHeight)
	if a.notice != "" {
		fmt.Println()
		fmt.Println(a.notice)
	}
}

func runSettingsReset(_ *cobra.Command, _ []string) {
	a, err := newApp(logToStderr)
	if err != nil {
		fail("%v", err)
	}
	if err := settings.Save(a.settingsPath, settings.Defaults()); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Settings reset to defaults in %s\n", a.settingsPath)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
