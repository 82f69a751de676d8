// Package theme provides the terminal color palettes for the three
// theme attributes.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gducharme/readable/internal/prefs"
)

// Palette is the color set for one theme attribute.
type Palette struct {
	Name       string
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
	Selection  lipgloss.Color
	Error      lipgloss.Color
}

var light = Palette{
	Name:       string(prefs.ThemeLight),
	Text:       lipgloss.Color("235"),
	Muted:      lipgloss.Color("245"),
	Accent:     lipgloss.Color("25"),
	Border:     lipgloss.Color("250"),
	Background: lipgloss.Color("255"),
	Selection:  lipgloss.Color("24"),
	Error:      lipgloss.Color("124"),
}

var dark = Palette{
	Name:       string(prefs.ThemeDark),
	Text:       lipgloss.Color("252"),
	Muted:      lipgloss.Color("243"),
	Accent:     lipgloss.Color("75"),
	Border:     lipgloss.Color("238"),
	Background: lipgloss.Color("234"),
	Selection:  lipgloss.Color("81"),
	Error:      lipgloss.Color("203"),
}

var highContrast = Palette{
	Name:       string(prefs.ThemeHighContrast),
	Text:       lipgloss.Color("15"),
	Muted:      lipgloss.Color("252"),
	Accent:     lipgloss.Color("11"),
	Border:     lipgloss.Color("15"),
	Background: lipgloss.Color("0"),
	Selection:  lipgloss.Color("11"),
	Error:      lipgloss.Color("9"),
}

var palettes = map[string]Palette{
	light.Name:        light,
	dark.Name:         dark,
	highContrast.Name: highContrast,
}

// ByName returns the palette for a theme attribute, falling back to
// light for unknown names.
func ByName(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return light
}

// Names returns the available palette names in presentation order.
func Names() []string {
	names := make([]string, 0, len(prefs.Themes))
	for _, t := range prefs.Themes {
		names = append(names, string(t))
	}
	return names
}

// Body returns the base text style for preview content.
func (p Palette) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

// Label returns the style for control labels.
func (p Palette) Label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Muted)
}

// Value returns the style for control values.
func (p Palette) Value() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent)
}

// Selected returns the style for the focused control row.
func (p Palette) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Selection).Bold(true)
}

// Frame returns the bordered style wrapping the preview pane.
func (p Palette) Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
}

// Title returns the style for pane headings.
func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

// Status returns the style for the transient status line.
func (p Palette) Status(isErr bool) lipgloss.Style {
	if isErr {
		return lipgloss.NewStyle().Foreground(p.Error)
	}
	return lipgloss.NewStyle().Foreground(p.Muted)
}
