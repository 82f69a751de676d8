package tui

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/gducharme/readable/internal/config"
)

// pasteText reads text from the system clipboard.
func pasteText(cfg *config.Config) (string, error) {
	cmd := detectPasteCommand(cfg)
	if cmd == "" {
		return "", fmt.Errorf("no clipboard command available")
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return "", fmt.Errorf("invalid clipboard command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, parts[0], parts[1:]...).Output()
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// detectPasteCommand returns the clipboard read command to use.
func detectPasteCommand(cfg *config.Config) string {
	// Use configured command if specified
	if cfg != nil && cfg.Clipboard.PasteCommand != "" {
		return cfg.Clipboard.PasteCommand
	}

	// Auto-detect based on environment
	// Check for Wayland
	if _, err := exec.LookPath("wl-paste"); err == nil {
		return "wl-paste --no-newline"
	}

	// Check for X11
	if _, err := exec.LookPath("xclip"); err == nil {
		return "xclip -selection clipboard -o"
	}

	if _, err := exec.LookPath("xsel"); err == nil {
		return "xsel --clipboard --output"
	}

	return ""
}
