// Package textflow lays preview text out for a terminal: paragraph
// splitting, cell-accurate wrapping, and the terminal approximations of
// the spacing variables.
package textflow

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SampleText is shown in the preview when no text has been pasted.
const SampleText = `Typography is the craft of endowing human language with a durable visual form. Good typography goes unnoticed: the reader falls into the text and forgets the letters that carry it.

Line length, spacing, and contrast each change how long a reader can stay in a text before fatigue sets in. What reads comfortably for one person can be hard work for another, which is why these controls exist at all.

Paste your own text to preview it with the current settings. Everything you change here is saved on this device and restored the next time you return.`

// letterSpaceThreshold is the letter-spacing value (em) at which the
// terminal approximation kicks in and a space is inserted between
// characters. Below it, cell-grid terminals cannot show the difference.
const letterSpaceThreshold = 0.05

// doubleSpaceThreshold is the line-height multiplier at which a blank
// line is inserted between wrapped lines.
const doubleSpaceThreshold = 1.8

// Options controls how text is laid out.
type Options struct {
	Width            int     // wrap width in display cells
	LineHeight       float64 // unitless multiplier
	LetterSpacing    float64 // em
	WordSpacing      float64 // px
	ParagraphSpacing float64 // em
}

// Paragraphs splits text into paragraphs on newline boundaries.
// Consecutive blank lines collapse into one paragraph break.
func Paragraphs(text string) []string {
	var paras []string
	for _, raw := range strings.Split(text, "\n") {
		p := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(p) == "" {
			continue
		}
		paras = append(paras, p)
	}
	return paras
}

// Flow lays text out as terminal lines under the given options.
func Flow(text string, opts Options) []string {
	width := opts.Width
	if width < 1 {
		width = 1
	}

	blankLines := paragraphGap(opts.ParagraphSpacing)

	var lines []string
	for i, para := range Paragraphs(text) {
		if i > 0 {
			for range blankLines {
				lines = append(lines, "")
			}
		}

		wrapped := wrap(spacedWords(para, opts), opts, width)
		if opts.LineHeight >= doubleSpaceThreshold {
			for j, line := range wrapped {
				if j > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, line)
			}
		} else {
			lines = append(lines, wrapped...)
		}
	}
	return lines
}

// Render joins the flowed lines into a single block.
func Render(text string, opts Options) string {
	return strings.Join(Flow(text, opts), "\n")
}

// spacedWords applies letter spacing to each word of a paragraph and
// returns the word list.
func spacedWords(para string, opts Options) []string {
	words := strings.Fields(para)
	if opts.LetterSpacing < letterSpaceThreshold {
		return words
	}
	spaced := make([]string, len(words))
	for i, w := range words {
		spaced[i] = spread(w)
	}
	return spaced
}

// spread inserts a space between the characters of a word.
func spread(word string) string {
	runes := []rune(word)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wrap greedily wraps words to the given cell width, joining them with
// the word gap derived from the word-spacing preference. Words wider
// than the wrap width stay on their own line rather than being broken.
func wrap(words []string, opts Options, width int) []string {
	gap := strings.Repeat(" ", 1+wordGap(opts.WordSpacing))
	gapWidth := runewidth.StringWidth(gap)

	var lines []string
	var cur strings.Builder
	curWidth := 0

	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if curWidth > 0 && curWidth+gapWidth+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteString(gap)
			curWidth += gapWidth
		}
		cur.WriteString(w)
		curWidth += ww
	}
	if curWidth > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// wordGap maps the word-spacing preference (px, 0..6) to extra spaces
// between words.
func wordGap(px float64) int {
	if px < 0 {
		return 0
	}
	return int(math.Round(px / 3))
}

// paragraphGap maps the paragraph-spacing preference (em, 0.4..1.4) to
// blank lines between paragraphs.
func paragraphGap(em float64) int {
	n := int(math.Round(em * 1.5))
	if n < 0 {
		return 0
	}
	return n
}
