package prefs

import "fmt"

// Snapshot is the complete set of current preference values. All nine
// keys are always present; numeric fields are always within their
// domains (clamped on write).
type Snapshot struct {
	Theme            Theme
	FontFamily       FontFamily
	FontSize         float64
	LineHeight       float64
	LetterSpacing    float64
	WordSpacing      float64
	MaxLineWidth     float64
	ParagraphSpacing float64
	InputText        string
}

// Defaults returns the built-in preference snapshot used before any
// durable record hydrates.
func Defaults() Snapshot {
	return Snapshot{
		Theme:            ThemeLight,
		FontFamily:       FontSystem,
		FontSize:         18,
		LineHeight:       1.65,
		LetterSpacing:    0.01,
		WordSpacing:      1,
		MaxLineWidth:     68,
		ParagraphSpacing: 0.8,
		InputText:        "",
	}
}

// Value returns the serialized value for k. Unknown keys return the
// empty string; callers validate keys before reading.
func (s Snapshot) Value(k Key) string {
	switch k {
	case KeyTheme:
		return string(s.Theme)
	case KeyFontFamily:
		return string(s.FontFamily)
	case KeyFontSize:
		return FormatNumber(s.FontSize)
	case KeyLineHeight:
		return FormatNumber(s.LineHeight)
	case KeyLetterSpacing:
		return FormatNumber(s.LetterSpacing)
	case KeyWordSpacing:
		return FormatNumber(s.WordSpacing)
	case KeyMaxLineWidth:
		return FormatNumber(s.MaxLineWidth)
	case KeyParagraphSpacing:
		return FormatNumber(s.ParagraphSpacing)
	case KeyInputText:
		return s.InputText
	}
	return ""
}

// Number returns the numeric value for k. ok is false for
// non-numeric keys.
func (s Snapshot) Number(k Key) (float64, bool) {
	switch k {
	case KeyFontSize:
		return s.FontSize, true
	case KeyLineHeight:
		return s.LineHeight, true
	case KeyLetterSpacing:
		return s.LetterSpacing, true
	case KeyWordSpacing:
		return s.WordSpacing, true
	case KeyMaxLineWidth:
		return s.MaxLineWidth, true
	case KeyParagraphSpacing:
		return s.ParagraphSpacing, true
	}
	return 0, false
}

// setValue parses raw for k, clamps it into domain, and assigns it.
// Enumerated keys reject values outside their fixed set; numeric keys
// clamp silently.
func (s *Snapshot) setValue(k Key, raw string) error {
	switch k {
	case KeyTheme:
		t, ok := ParseTheme(raw)
		if !ok {
			return fmt.Errorf("theme: unknown value %q (use light, dark, or high-contrast)", raw)
		}
		s.Theme = t
	case KeyFontFamily:
		f, ok := ParseFontFamily(raw)
		if !ok {
			return fmt.Errorf("fontFamily: unknown value %q (use system or atkinson)", raw)
		}
		s.FontFamily = f
	case KeyFontSize:
		v, err := parseNumber(k, raw)
		if err != nil {
			return err
		}
		s.FontSize = v
	case KeyLineHeight:
		v, err := parseNumber(k, raw)
		if err != nil {
			return err
		}
		s.LineHeight = v
	case KeyLetterSpacing:
		v, err := parseNumber(k, raw)
		if err != nil {
			return err
		}
		s.LetterSpacing = v
	case KeyWordSpacing:
		v, err := parseNumber(k, raw)
		if err != nil {
			return err
		}
		s.WordSpacing = v
	case KeyMaxLineWidth:
		v, err := parseNumber(k, raw)
		if err != nil {
			return err
		}
		s.MaxLineWidth = v
	case KeyParagraphSpacing:
		v, err := parseNumber(k, raw)
		if err != nil {
			return err
		}
		s.ParagraphSpacing = v
	case KeyInputText:
		s.InputText = raw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, k)
	}
	return nil
}
