package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gducharme/readable/internal/config"
	"github.com/gducharme/readable/internal/prefs"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := prefs.NewStore(prefs.Defaults(), nil)
	t.Cleanup(func() { s.Close() })
	return New(config.DefaultConfig(), s)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_CursorMovement(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 0, m.cursor)

	// k at the top stays put
	m = update(t, m, keyMsg("k"))
	assert.Equal(t, 0, m.cursor)

	m = update(t, m, keyMsg("j"))
	assert.Equal(t, 1, m.cursor)

	// j past the last row stays on it
	for range len(controls) + 2 {
		m = update(t, m, keyMsg("j"))
	}
	assert.Equal(t, len(controls)-1, m.cursor)
}

func TestModel_AdjustNumeric(t *testing.T) {
	m := newTestModel(t)

	// Move to font size and step it up
	m = update(t, m, keyMsg("j"))
	m = update(t, m, keyMsg("j"))
	assert.Equal(t, prefs.KeyFontSize, controls[m.cursor].key)

	m = update(t, m, keyMsg("l"))
	assert.Equal(t, "19", m.store.Get(prefs.KeyFontSize))

	m = update(t, m, keyMsg("h"))
	m = update(t, m, keyMsg("h"))
	assert.Equal(t, "17", m.store.Get(prefs.KeyFontSize))
}

func TestModel_AdjustCyclesTheme(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, prefs.KeyTheme, controls[m.cursor].key)

	m = update(t, m, keyMsg("l"))
	assert.Equal(t, "dark", m.store.Get(prefs.KeyTheme))

	m = update(t, m, keyMsg("l"))
	assert.Equal(t, "high-contrast", m.store.Get(prefs.KeyTheme))

	m = update(t, m, keyMsg("l"))
	assert.Equal(t, "light", m.store.Get(prefs.KeyTheme))
}

func TestModel_PresetKeys(t *testing.T) {
	m := newTestModel(t)

	// 4 is Large print
	m = update(t, m, keyMsg("4"))
	assert.Equal(t, "22", m.store.Get(prefs.KeyFontSize))
	assert.Equal(t, "high-contrast", m.store.Get(prefs.KeyTheme))
	assert.Contains(t, m.statusMsg, "Large print")

	// r resets back to defaults
	m = update(t, m, keyMsg("r"))
	assert.Equal(t, "18", m.store.Get(prefs.KeyFontSize))
	assert.Equal(t, "light", m.store.Get(prefs.KeyTheme))
}

func TestModel_ClearText(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.store.Set(prefs.KeyInputText, "pasted"))

	m = update(t, m, keyMsg("x"))
	assert.Empty(t, m.store.Get(prefs.KeyInputText))
	assert.Equal(t, "cleared pasted text", m.statusMsg)
}

func TestModel_PasteResult(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, pasteResultMsg{text: "hello clipboard"})
	assert.Equal(t, "hello clipboard", m.store.Get(prefs.KeyInputText))
	assert.False(t, m.statusErr)

	m = update(t, m, pasteResultMsg{err: assert.AnError})
	assert.True(t, m.statusErr)
	assert.Contains(t, m.statusMsg, "paste failed")
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyMsg("?"))
	assert.Equal(t, ModeHelp, m.mode)

	m = update(t, m, keyMsg("?"))
	assert.Equal(t, ModePanel, m.mode)
}

func TestModel_ViewAfterResize(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing...", m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	assert.Contains(t, view, "Preferences")
	assert.Contains(t, view, "Preview")
	for _, name := range prefs.PresetNames() {
		assert.Contains(t, view, name)
	}
}

func TestModel_ControlValuesCarryUnits(t *testing.T) {
	m := newTestModel(t)
	m.refresh()

	assert.Equal(t, "18px", m.controlValue(prefs.KeyFontSize))
	assert.Equal(t, "1.65", m.controlValue(prefs.KeyLineHeight))
	assert.Equal(t, "68ch", m.controlValue(prefs.KeyMaxLineWidth))
	assert.Equal(t, "system", m.controlValue(prefs.KeyFontFamily))
}

func TestModel_PreviewUsesSampleUntilPaste(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	firstWord := strings.Fields(m.snapshot.InputText)
	assert.Empty(t, firstWord)
	assert.Contains(t, m.viewport.View(), "Typography")

	require.NoError(t, m.store.Set(prefs.KeyInputText, "my own preview text"))
	m.refresh()
	assert.Contains(t, m.viewport.View(), "my own preview text")
}
