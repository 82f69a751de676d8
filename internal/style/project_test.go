package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gducharme/readable/internal/prefs"
)

func TestProject_Defaults(t *testing.T) {
	p := Project(prefs.Defaults())

	assert.Equal(t, SystemStack, p.FontFamily)
	assert.Equal(t, "18px", p.FontSize)
	assert.Equal(t, "1.65", p.LineHeight)
	assert.Equal(t, "0.01em", p.LetterSpacing)
	assert.Equal(t, "1px", p.WordSpacing)
	assert.Equal(t, "68ch", p.MaxWidth)
	assert.Equal(t, "0.8em", p.ParagraphSpacing)
	assert.Equal(t, "light", p.ThemeAttr)
}

func TestProject_FontStacks(t *testing.T) {
	snap := prefs.Defaults()

	snap.FontFamily = prefs.FontAtkinson
	assert.Equal(t, AtkinsonStack, Project(snap).FontFamily)

	snap.FontFamily = prefs.FontSystem
	assert.Equal(t, SystemStack, Project(snap).FontFamily)
}

func TestProject_Idempotent(t *testing.T) {
	snap := prefs.Defaults()
	snap.Theme = prefs.ThemeDark
	snap.FontSize = 22
	snap.LetterSpacing = 0.065
	snap.InputText = "some pasted text"

	first := Project(snap)
	second := Project(snap)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Vars(), second.Vars())
}

func TestProject_Total(t *testing.T) {
	// Every theme/font combination yields a complete variable set
	for _, th := range prefs.Themes {
		for _, f := range prefs.FontFamilies {
			snap := prefs.Defaults()
			snap.Theme = th
			snap.FontFamily = f

			p := Project(snap)
			assert.Equal(t, string(th), p.ThemeAttr)

			vars := p.Vars()
			require.Len(t, vars, 7)
			for _, v := range vars {
				assert.NotEmpty(t, v.Name)
				assert.NotEmpty(t, v.Value)
			}
		}
	}
}

func TestProject_NumericFormatting(t *testing.T) {
	snap := prefs.Defaults()
	snap.LineHeight = 2.0
	snap.WordSpacing = 0
	snap.LetterSpacing = -0.02

	p := Project(snap)
	assert.Equal(t, "2", p.LineHeight)
	assert.Equal(t, "0px", p.WordSpacing)
	assert.Equal(t, "-0.02em", p.LetterSpacing)
}
