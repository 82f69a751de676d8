package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gducharme/readable/internal/prefs"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "List and apply preference presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range prefs.Presets() {
			fmt.Printf("%-18s %s\n", p.Name, p.Description)
		}
		return nil
	},
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Apply a preset",
	Long: `Apply a named preset. Presets replace every display preference at
once; pasted preview text is left untouched.

Examples:
  readable preset apply Reader
  readable preset apply "Large print"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prefs.ApplyPreset(getStore(), args[0]); err != nil {
			return err
		}
		fmt.Printf("applied preset: %s\n", args[0])
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset display preferences to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prefs.ApplyPreset(getStore(), prefs.PresetDefault); err != nil {
			return err
		}
		fmt.Println("reset display preferences to defaults")
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetApplyCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(resetCmd)
}
