package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gducharme/readable/internal/prefs"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show storage status",
	Long: `Show the durable storage status: records file path and size, how
many preferences differ from the defaults, and when the newest record
was written.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s := getStore()

	fmt.Printf("records file:  %s\n", recordsPath)

	if info, err := os.Stat(recordsPath); err == nil {
		fmt.Printf("file size:     %s\n", humanize.Bytes(uint64(info.Size())))
	} else {
		fmt.Printf("file size:     (not created yet)\n")
	}

	changed := 0
	defaults := prefs.Defaults()
	snap := s.Snapshot()
	for _, k := range prefs.Keys {
		if snap.Value(k) != defaults.Value(k) {
			changed++
		}
	}
	fmt.Printf("customized:    %d of %d preferences\n", changed, len(prefs.Keys))

	if rev, at := s.LastWrite(); rev != "" {
		fmt.Printf("last write:    %s (rev %s)\n", humanize.Time(at), rev)
	} else {
		fmt.Printf("last write:    never\n")
	}

	return nil
}
