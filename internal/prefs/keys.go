// Package prefs provides the readability preference store.
package prefs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Key identifies a single preference.
type Key string

const (
	KeyTheme            Key = "theme"
	KeyFontFamily       Key = "fontFamily"
	KeyFontSize         Key = "fontSize"
	KeyLineHeight       Key = "lineHeight"
	KeyLetterSpacing    Key = "letterSpacing"
	KeyWordSpacing      Key = "wordSpacing"
	KeyMaxLineWidth     Key = "maxLineWidth"
	KeyParagraphSpacing Key = "paragraphSpacing"
	KeyInputText        Key = "inputText"
)

// Keys lists every preference key in canonical order.
var Keys = []Key{
	KeyTheme,
	KeyFontFamily,
	KeyFontSize,
	KeyLineHeight,
	KeyLetterSpacing,
	KeyWordSpacing,
	KeyMaxLineWidth,
	KeyParagraphSpacing,
	KeyInputText,
}

// DisplayKeys lists the keys that affect presentation. Presets cover
// exactly these keys and never touch inputText.
var DisplayKeys = []Key{
	KeyTheme,
	KeyFontFamily,
	KeyFontSize,
	KeyLineHeight,
	KeyLetterSpacing,
	KeyWordSpacing,
	KeyMaxLineWidth,
	KeyParagraphSpacing,
}

// Valid reports whether k is a known preference key.
func (k Key) Valid() bool {
	_, ok := domains[k]
	return ok || k == KeyTheme || k == KeyFontFamily || k == KeyInputText
}

// keyNamespace prefixes every durable record key so the records file can
// coexist with future record kinds.
const keyNamespace = "readable:"

// StorageKey returns the namespaced durable key for k.
func (k Key) StorageKey() string {
	return keyNamespace + string(k)
}

// ParseStorageKey maps a namespaced durable key back to its preference key.
func ParseStorageKey(s string) (Key, bool) {
	name, found := strings.CutPrefix(s, keyNamespace)
	if !found {
		return "", false
	}
	k := Key(name)
	if !k.Valid() {
		return "", false
	}
	return k, true
}

// ParseKey parses a user-supplied key name.
func ParseKey(s string) (Key, error) {
	k := Key(strings.TrimSpace(s))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}

// Theme is the color theme preference.
type Theme string

const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "high-contrast"
)

// Themes lists the available themes in presentation order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeHighContrast}

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.TrimSpace(s)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	case ThemeHighContrast:
		return ThemeHighContrast, true
	}
	return "", false
}

// FontFamily is the typeface preference.
type FontFamily string

const (
	FontSystem   FontFamily = "system"
	FontAtkinson FontFamily = "atkinson"
)

// FontFamilies lists the available typeface choices in presentation order.
var FontFamilies = []FontFamily{FontSystem, FontAtkinson}

// ParseFontFamily parses a font family name.
func ParseFontFamily(s string) (FontFamily, bool) {
	switch FontFamily(strings.TrimSpace(s)) {
	case FontSystem:
		return FontSystem, true
	case FontAtkinson:
		return FontAtkinson, true
	}
	return "", false
}

// Domain describes the allowed range and control step of a numeric key.
type Domain struct {
	Min  float64
	Max  float64
	Step float64
	Unit string // px, em, ch, or empty for unitless
}

var domains = map[Key]Domain{
	KeyFontSize:         {Min: 14, Max: 26, Step: 1, Unit: "px"},
	KeyLineHeight:       {Min: 1.2, Max: 2.0, Step: 0.01},
	KeyLetterSpacing:    {Min: -0.02, Max: 0.10, Step: 0.005, Unit: "em"},
	KeyWordSpacing:      {Min: 0, Max: 6, Step: 1, Unit: "px"},
	KeyMaxLineWidth:     {Min: 50, Max: 85, Step: 1, Unit: "ch"},
	KeyParagraphSpacing: {Min: 0.4, Max: 1.4, Step: 0.05, Unit: "em"},
}

// DomainOf returns the numeric domain for k. ok is false for the
// enumerated and free-text keys.
func DomainOf(k Key) (Domain, bool) {
	d, ok := domains[k]
	return d, ok
}

// Clamp returns v limited to the domain bounds.
func (d Domain) Clamp(v float64) float64 {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Quantize rounds v to the step's decimal precision, discarding the
// float drift that accumulates when stepping fractional controls.
func (d Domain) Quantize(v float64) float64 {
	dec := 0
	if s := FormatNumber(d.Step); strings.Contains(s, ".") {
		dec = len(s) - strings.IndexByte(s, '.') - 1
	}
	pow := math.Pow10(dec)
	return math.Round(v*pow) / pow
}

// FormatNumber renders a numeric preference value without trailing
// float artifacts, so serialization round-trips byte-identically.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNumber(k Key, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", k, raw)
	}
	return domains[k].Clamp(v), nil
}
