package prefs

import (
	"fmt"
	"strings"
)

// Preset is a named, immutable bundle of display preference values.
// Presets cover the eight display keys and never touch inputText.
type Preset struct {
	Name        string
	Description string
	Values      map[Key]string
}

const (
	PresetDefault    = "Default"
	PresetReader     = "Reader"
	PresetDyslexia   = "Dyslexia-friendly"
	PresetLargePrint = "Large print"
)

// presetOrder is the fixed presentation order.
var presetOrder = []string{PresetDefault, PresetReader, PresetDyslexia, PresetLargePrint}

var presets = map[string]Preset{
	PresetDefault: {
		Name:        PresetDefault,
		Description: "Built-in defaults",
		Values: map[Key]string{
			KeyTheme:            string(ThemeLight),
			KeyFontFamily:       string(FontSystem),
			KeyFontSize:         "18",
			KeyLineHeight:       "1.65",
			KeyLetterSpacing:    "0.01",
			KeyWordSpacing:      "1",
			KeyMaxLineWidth:     "68",
			KeyParagraphSpacing: "0.8",
		},
	},
	PresetReader: {
		Name:        PresetReader,
		Description: "Comfortable long-form reading",
		Values: map[Key]string{
			KeyTheme:            string(ThemeLight),
			KeyFontFamily:       string(FontSystem),
			KeyFontSize:         "19",
			KeyLineHeight:       "1.8",
			KeyLetterSpacing:    "0.02",
			KeyWordSpacing:      "2",
			KeyMaxLineWidth:     "60",
			KeyParagraphSpacing: "1",
		},
	},
	PresetDyslexia: {
		Name:        PresetDyslexia,
		Description: "Hyperlegible type with generous spacing",
		Values: map[Key]string{
			KeyTheme:            string(ThemeLight),
			KeyFontFamily:       string(FontAtkinson),
			KeyFontSize:         "20",
			KeyLineHeight:       "1.9",
			KeyLetterSpacing:    "0.06",
			KeyWordSpacing:      "4",
			KeyMaxLineWidth:     "55",
			KeyParagraphSpacing: "1.2",
		},
	},
	PresetLargePrint: {
		Name:        PresetLargePrint,
		Description: "Maximum size and contrast",
		Values: map[Key]string{
			KeyTheme:            string(ThemeHighContrast),
			KeyFontFamily:       string(FontSystem),
			KeyFontSize:         "22",
			KeyLineHeight:       "1.9",
			KeyLetterSpacing:    "0.03",
			KeyWordSpacing:      "3",
			KeyMaxLineWidth:     "55",
			KeyParagraphSpacing: "1",
		},
	},
}

// PresetNames returns the preset names in their fixed order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// Presets returns the presets in their fixed order.
func Presets() []Preset {
	ps := make([]Preset, 0, len(presetOrder))
	for _, name := range presetOrder {
		ps = append(ps, presets[name])
	}
	return ps
}

// FindPreset looks up a preset by name (case-insensitive).
func FindPreset(name string) (Preset, error) {
	trimmed := strings.TrimSpace(name)
	for _, candidate := range presetOrder {
		if strings.EqualFold(candidate, trimmed) {
			return presets[candidate], nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyPreset atomically replaces the display keys in the store with
// the named preset's values, leaving inputText untouched. Unknown
// names fail loudly: that is a caller defect, not an environmental
// condition.
func ApplyPreset(s *Store, name string) error {
	p, err := FindPreset(name)
	if err != nil {
		return err
	}
	return s.SetValues(p.Values, ChangePreset)
}
