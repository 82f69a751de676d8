// Package style projects a preference snapshot onto presentation
// variables. Projection is a pure function of the snapshot: no I/O, no
// storage, same input always yields the same variable set.
package style

import (
	"github.com/gducharme/readable/internal/prefs"
)

// Font stacks resolved from the fontFamily preference.
const (
	SystemStack   = `system-ui, -apple-system, "Segoe UI", Roboto, "Helvetica Neue", sans-serif`
	AtkinsonStack = `"Atkinson Hyperlegible", "Comic Sans MS", Verdana, sans-serif`
)

// Projection is the complete presentation variable set derived from
// one snapshot, plus the theme attribute applied to the root scope.
type Projection struct {
	FontFamily       string // resolved font stack
	FontSize         string // px
	LineHeight       string // unitless multiplier
	LetterSpacing    string // em
	WordSpacing      string // px
	MaxWidth         string // ch
	ParagraphSpacing string // em
	ThemeAttr        string // light, dark, or high-contrast
}

// Var is one named presentation variable.
type Var struct {
	Name  string
	Value string
}

// Project maps a snapshot to its presentation variables. It is total:
// every valid snapshot yields a complete variable set.
func Project(s prefs.Snapshot) Projection {
	family := SystemStack
	if s.FontFamily == prefs.FontAtkinson {
		family = AtkinsonStack
	}

	return Projection{
		FontFamily:       family,
		FontSize:         prefs.FormatNumber(s.FontSize) + "px",
		LineHeight:       prefs.FormatNumber(s.LineHeight),
		LetterSpacing:    prefs.FormatNumber(s.LetterSpacing) + "em",
		WordSpacing:      prefs.FormatNumber(s.WordSpacing) + "px",
		MaxWidth:         prefs.FormatNumber(s.MaxLineWidth) + "ch",
		ParagraphSpacing: prefs.FormatNumber(s.ParagraphSpacing) + "em",
		ThemeAttr:        string(s.Theme),
	}
}

// Vars returns the presentation variables as an ordered list, the way
// a rendering surface would receive them.
func (p Projection) Vars() []Var {
	return []Var{
		{Name: "--rdbl-font-family", Value: p.FontFamily},
		{Name: "--rdbl-font-size", Value: p.FontSize},
		{Name: "--rdbl-line-height", Value: p.LineHeight},
		{Name: "--rdbl-letter-spacing", Value: p.LetterSpacing},
		{Name: "--rdbl-word-spacing", Value: p.WordSpacing},
		{Name: "--rdbl-max-width", Value: p.MaxWidth},
		{Name: "--rdbl-paragraph-spacing", Value: p.ParagraphSpacing},
	}
}
