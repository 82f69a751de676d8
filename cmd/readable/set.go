package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gducharme/readable/internal/prefs"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference value",
	Long: `Set one preference value from the command line.

Numeric values outside the allowed range are clamped to the nearest
bound, never rejected. Enumerated keys accept only their fixed choices.

Examples:
  # Set the font size (px, 14-26)
  readable set fontSize 20

  # Out-of-range values clamp silently
  readable set lineHeight 9   # stored as 2

  # Switch theme
  readable set theme dark

  # Replace the preview text
  readable set inputText "$(cat article.txt)"`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	k, err := prefs.ParseKey(args[0])
	if err != nil {
		return err
	}

	s := getStore()
	if err := s.Set(k, args[1]); err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", k, formatTextValue(k, s.Get(k)))
	return nil
}
