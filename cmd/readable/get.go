package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gducharme/readable/internal/prefs"
	"github.com/gducharme/readable/internal/style"
)

var getOpts struct {
	format string
	vars   bool
}

var getCmd = &cobra.Command{
	Use:   "get [key...]",
	Short: "Print current preference values",
	Long: `Print current preference values.

With no arguments, prints every preference. Keys can be given to limit
output. --vars prints the derived presentation variables instead of the
raw preference values.

Examples:
  # Print all preferences
  readable get

  # Print selected keys
  readable get fontSize lineHeight

  # Machine-readable output
  readable get --format json
  readable get --format yaml

  # Derived presentation variables and theme attribute
  readable get --vars`,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVar(&getOpts.format, "format", "text",
		"Output format: text, json, yaml")
	getCmd.Flags().BoolVar(&getOpts.vars, "vars", false,
		"Print derived presentation variables instead of preference values")
}

func runGet(cmd *cobra.Command, args []string) error {
	if getOpts.vars && len(args) > 0 {
		return fmt.Errorf("--vars prints the complete variable set and cannot be combined with key arguments")
	}

	s := getStore()

	keys := prefs.Keys
	if len(args) > 0 {
		keys = make([]prefs.Key, 0, len(args))
		for _, arg := range args {
			k, err := prefs.ParseKey(arg)
			if err != nil {
				return err
			}
			keys = append(keys, k)
		}
	}

	if getOpts.vars {
		return printVars(s)
	}

	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[string(k)] = s.Get(k)
	}

	switch getOpts.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(values)
	case "text":
		for _, k := range keys {
			fmt.Printf("%-17s %s\n", k, formatTextValue(k, s.Get(k)))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (use text, json, or yaml)", getOpts.format)
	}
}

// formatTextValue appends the domain unit for numeric keys and elides
// long pasted text.
func formatTextValue(k prefs.Key, v string) string {
	if k == prefs.KeyInputText {
		if v == "" {
			return "(empty)"
		}
		line := strings.SplitN(v, "\n", 2)[0]
		// Truncate on a rune boundary so multibyte text stays valid
		if runes := []rune(line); len(runes) > 60 {
			line = string(runes[:60]) + "…"
		}
		return fmt.Sprintf("%q (%d chars)", line, len(v))
	}
	if d, ok := prefs.DomainOf(k); ok && d.Unit != "" {
		return v + d.Unit
	}
	return v
}

// printVars prints the style projection for the current snapshot.
func printVars(s *prefs.Store) error {
	p := style.Project(s.Snapshot())

	switch getOpts.format {
	case "json", "yaml":
		out := make(map[string]string, 8)
		for _, v := range p.Vars() {
			out[v.Name] = v.Value
		}
		out["data-theme"] = p.ThemeAttr
		if getOpts.format == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		return yaml.NewEncoder(os.Stdout).Encode(out)
	case "text":
		for _, v := range p.Vars() {
			fmt.Printf("%-26s %s\n", v.Name, v.Value)
		}
		fmt.Printf("%-26s %s\n", "data-theme", p.ThemeAttr)
		return nil
	default:
		return fmt.Errorf("unknown format %q (use text, json, or yaml)", getOpts.format)
	}
}
