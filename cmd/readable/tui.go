package main

import (
	"github.com/spf13/cobra"

	"github.com/gducharme/readable/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive preference panel",
	Long: `Launch the interactive terminal panel for tuning readability
preferences.

The panel provides:
  - Controls for every typography preference and the color theme
  - A live preview of pasted or sample text
  - One-key presets (Default, Reader, Dyslexia-friendly, Large print)
  - Live updates when preferences change in another terminal

Key bindings:
  j/k, ↑/↓    Previous/next control
  h/l, ←/→    Decrease/increase value
  1-4         Apply preset
  p           Paste preview text from clipboard
  x           Clear pasted text
  r           Reset to defaults
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	watchPath := ""
	if getConfig().Storage.Watch {
		watchPath = recordsPath
	}

	return tui.Run(tui.RunOptions{
		Config:      getConfig(),
		Store:       getStore(),
		RecordsPath: watchPath,
	})
}
