// Package main provides the CLI entrypoint for readable.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gducharme/readable/internal/config"
	"github.com/gducharme/readable/internal/prefs"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose     bool
		recordsFile string
		configPath  string
	}
	logger *slog.Logger

	// prefStore is the global preference store instance
	prefStore   *prefs.Store
	recordsPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "readable",
	Short: "Readability preference panel for the terminal",
	Long: `readable is a readability preference panel for the terminal.

It lets you tune typography (font, size, line height, letter and word
spacing, line length, paragraph spacing) and a color theme, preview the
result against pasted text, and keeps the preferences on this device
across sessions.

Running readable without a subcommand launches the interactive panel.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.EnsureDataDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		recordsPath = globalOpts.recordsFile
		if recordsPath == "" {
			recordsPath = config.RecordsPath()
		}

		// Durable storage is best-effort: if it cannot be opened we
		// keep working in memory with defaults.
		var persistence prefs.Persistence
		if p, err := prefs.NewJSONLPersistence(recordsPath); err != nil {
			logger.Warn("failed to open preference records, continuing in memory", "error", err)
		} else {
			persistence = p
		}

		var opts []prefs.Option
		if cfg.Storage.DebounceMs > 0 {
			opts = append(opts, prefs.WithDebounce(time.Duration(cfg.Storage.DebounceMs)*time.Millisecond))
		}
		prefStore = prefs.NewStore(prefs.Defaults(), persistence, opts...)

		if err := prefStore.Hydrate(); err != nil {
			logger.Warn("failed to hydrate preferences from disk", "error", err)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		// Final persist and cleanup
		if prefStore != nil {
			return prefStore.Close()
		}
		return nil
	},
	// Default to the TUI when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.recordsFile, "records-file", "",
		"Path to preference records file (default: ~/.local/share/readable/prefs.jsonl)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/readable/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// getStore returns the global store instance.
func getStore() *prefs.Store {
	return prefStore
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	return cfg
}
