package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/gducharme/readable/internal/prefs"
)

func TestFormatTextValue(t *testing.T) {
	assert.Equal(t, "(empty)", formatTextValue(prefs.KeyInputText, ""))
	assert.Equal(t, "18px", formatTextValue(prefs.KeyFontSize, "18"))
	assert.Equal(t, "1.65", formatTextValue(prefs.KeyLineHeight, "1.65"))
	assert.Equal(t, "dark", formatTextValue(prefs.KeyTheme, "dark"))
}

func TestFormatTextValue_TruncatesOnRuneBoundary(t *testing.T) {
	// One leading ASCII byte puts byte offset 60 inside a rune
	long := "x" + strings.Repeat("é", 80)
	out := formatTextValue(prefs.KeyInputText, long)

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "x"+strings.Repeat("é", 59))
}

func TestRunGet_RejectsVarsWithKeys(t *testing.T) {
	getOpts.vars = true
	defer func() { getOpts.vars = false }()

	err := runGet(getCmd, []string{"fontSize"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--vars")
}
