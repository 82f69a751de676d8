package textflow

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOptions() Options {
	return Options{
		Width:            40,
		LineHeight:       1.65,
		LetterSpacing:    0.01,
		WordSpacing:      1,
		ParagraphSpacing: 0.8,
	}
}

func TestParagraphs(t *testing.T) {
	paras := Paragraphs("first para\n\nsecond para\n\n\n\nthird para\n")
	assert.Equal(t, []string{"first para", "second para", "third para"}, paras)

	assert.Empty(t, Paragraphs(""))
	assert.Empty(t, Paragraphs("\n\n  \n"))
	assert.Equal(t, []string{"one line"}, Paragraphs("one line"))
}

func TestFlow_WrapRespectsWidth(t *testing.T) {
	opts := baseOptions()
	opts.Width = 20

	for _, line := range Flow(SampleText, opts) {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 20, "line %q overflows", line)
	}
}

func TestFlow_LongWordKeptWhole(t *testing.T) {
	opts := baseOptions()
	opts.Width = 10

	lines := Flow("short pneumonoultramicroscopic end", opts)
	require.Contains(t, lines, "pneumonoultramicroscopic")
}

func TestFlow_ParagraphGap(t *testing.T) {
	opts := baseOptions()
	opts.Width = 80

	// 0.8em rounds to one blank line between paragraphs
	lines := Flow("first para\n\nsecond para", opts)
	require.Equal(t, []string{"first para", "", "second para"}, lines)

	// 1.4em rounds to two
	opts.ParagraphSpacing = 1.4
	lines = Flow("first para\n\nsecond para", opts)
	require.Equal(t, []string{"first para", "", "", "second para"}, lines)
}

func TestFlow_LetterSpacingSpread(t *testing.T) {
	opts := baseOptions()
	opts.Width = 80

	opts.LetterSpacing = 0.01
	assert.Equal(t, []string{"hello"}, Flow("hello", opts))

	// At the threshold, characters are spread apart
	opts.LetterSpacing = 0.05
	assert.Equal(t, []string{"h e l l o"}, Flow("hello", opts))
}

func TestFlow_WordSpacingWidensGaps(t *testing.T) {
	opts := baseOptions()
	opts.Width = 80

	opts.WordSpacing = 0
	assert.Equal(t, []string{"two words"}, Flow("two words", opts))

	opts.WordSpacing = 6
	assert.Equal(t, []string{"two   words"}, Flow("two words", opts))
}

func TestFlow_DoubleSpacing(t *testing.T) {
	opts := baseOptions()
	opts.Width = 10

	opts.LineHeight = 1.65
	single := Flow("alpha beta gamma delta", opts)
	assert.NotContains(t, single, "")

	opts.LineHeight = 1.9
	double := Flow("alpha beta gamma delta", opts)
	assert.Contains(t, double, "")
	assert.Greater(t, len(double), len(single))
}

func TestRender(t *testing.T) {
	opts := baseOptions()
	opts.Width = 80

	out := Render("first para\n\nsecond para", opts)
	assert.Equal(t, "first para\n\nsecond para", out)
	assert.Equal(t, strings.Join(Flow(SampleText, opts), "\n"), Render(SampleText, opts))
}

func TestFlow_ZeroWidth(t *testing.T) {
	opts := baseOptions()
	opts.Width = 0

	// Degenerate widths still produce output, one word per line
	lines := Flow("a b c", opts)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
