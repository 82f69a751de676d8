// Package tui provides the BubbleTea-based preference panel.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gducharme/readable/internal/config"
	"github.com/gducharme/readable/internal/prefs"
	"github.com/gducharme/readable/internal/style"
	"github.com/gducharme/readable/internal/textflow"
	"github.com/gducharme/readable/internal/theme"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModePanel Mode = iota
	ModeHelp
)

// control is one adjustable row in the panel.
type control struct {
	key   prefs.Key
	label string
}

// controls lists the panel rows in display order.
var controls = []control{
	{prefs.KeyTheme, "Theme"},
	{prefs.KeyFontFamily, "Font"},
	{prefs.KeyFontSize, "Font size"},
	{prefs.KeyLineHeight, "Line height"},
	{prefs.KeyLetterSpacing, "Letter spacing"},
	{prefs.KeyWordSpacing, "Word spacing"},
	{prefs.KeyMaxLineWidth, "Line width"},
	{prefs.KeyParagraphSpacing, "Paragraph gap"},
}

// panelWidth is the fixed width of the control pane.
const panelWidth = 34

// Model is the main TUI model.
type Model struct {
	cfg   *config.Config
	store *prefs.Store

	mode Mode

	// Derived presentation state, recomputed on every change event
	snapshot   prefs.Snapshot
	projection style.Projection
	palette    theme.Palette

	// Components
	viewport viewport.Model
	help     help.Model

	// State
	cursor    int
	width     int
	height    int
	ready     bool
	statusMsg string
	statusErr bool

	keys KeyMap

	refreshCh <-chan prefs.ChangeEvent
}

// New creates a new TUI model.
func New(cfg *config.Config, s *prefs.Store) Model {
	m := Model{
		cfg:   cfg,
		store: s,
		mode:  ModePanel,
		help:  help.New(),
		keys:  DefaultKeyMap(),
	}

	if s != nil {
		m.refreshCh = s.Subscribe()
		m.snapshot = s.Snapshot()
	} else {
		m.snapshot = prefs.Defaults()
	}
	m.projection = style.Project(m.snapshot)
	m.palette = theme.ByName(m.projection.ThemeAttr)

	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.watchForChanges
}

type changedMsg struct{}

type pasteResultMsg struct {
	text string
	err  error
}

// watchForChanges blocks on the store subscription.
func (m Model) watchForChanges() tea.Msg {
	if m.refreshCh == nil {
		return nil
	}
	if _, ok := <-m.refreshCh; !ok {
		return nil
	}
	return changedMsg{}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.viewport = viewport.New(m.previewWidth(), m.previewHeight())
		m.refresh()
		return m, nil

	case changedMsg:
		m.refresh()
		return m, m.watchForChanges

	case pasteResultMsg:
		if msg.err != nil {
			m.statusMsg = "paste failed: " + msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		if err := m.store.Set(prefs.KeyInputText, msg.text); err != nil {
			m.statusMsg = err.Error()
			m.statusErr = true
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("pasted %d characters", len(msg.text))
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
			m.mode = ModePanel
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(controls)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)

	case key.Matches(msg, m.keys.Preset):
		names := prefs.PresetNames()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(names) {
			if err := prefs.ApplyPreset(m.store, names[idx]); err != nil {
				m.statusMsg = err.Error()
				m.statusErr = true
			} else {
				m.statusMsg = "applied preset: " + names[idx]
				m.statusErr = false
			}
		}

	case key.Matches(msg, m.keys.Paste):
		return m, m.pasteFromClipboard()

	case key.Matches(msg, m.keys.ClearText):
		if err := m.store.Set(prefs.KeyInputText, ""); err == nil {
			m.statusMsg = "cleared pasted text"
			m.statusErr = false
		}

	case key.Matches(msg, m.keys.Reset):
		if err := prefs.ApplyPreset(m.store, prefs.PresetDefault); err == nil {
			m.statusMsg = "reset to defaults"
			m.statusErr = false
		}

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfPageUp()

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfPageDown()
	}

	return m, nil
}

// adjust steps the focused control by direction (-1 or +1). Enumerated
// controls cycle through their fixed choices.
func (m *Model) adjust(direction int) {
	k := controls[m.cursor].key

	var err error
	switch k {
	case prefs.KeyTheme:
		err = m.store.CycleTheme()
	case prefs.KeyFontFamily:
		err = m.store.CycleFontFamily()
	default:
		err = m.store.Adjust(k, direction)
	}

	if err != nil {
		m.statusMsg = err.Error()
		m.statusErr = true
		return
	}
	m.statusMsg = ""
	m.statusErr = false
}

// pasteFromClipboard reads the clipboard off the UI loop.
func (m Model) pasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := pasteText(m.cfg)
		return pasteResultMsg{text: text, err: err}
	}
}

// refresh recomputes everything derived from the snapshot.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.projection = style.Project(m.snapshot)
	m.palette = theme.ByName(m.projection.ThemeAttr)

	if !m.ready {
		return
	}

	m.viewport.Width = m.previewWidth()
	m.viewport.Height = m.previewHeight()

	text := m.snapshot.InputText
	if strings.TrimSpace(text) == "" {
		text = textflow.SampleText
	}

	// The content max-width preference binds the preview measure; the
	// pane only shrinks it further when the terminal is too narrow.
	wrapWidth := int(m.snapshot.MaxLineWidth)
	if avail := m.viewport.Width - 2; avail > 0 && avail < wrapWidth {
		wrapWidth = avail
	}

	rendered := textflow.Render(text, textflow.Options{
		Width:            wrapWidth,
		LineHeight:       m.snapshot.LineHeight,
		LetterSpacing:    m.snapshot.LetterSpacing,
		WordSpacing:      m.snapshot.WordSpacing,
		ParagraphSpacing: m.snapshot.ParagraphSpacing,
	})

	m.viewport.SetContent(m.palette.Body().Render(rendered))
}

func (m Model) previewWidth() int {
	w := m.width - panelWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) previewHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.mode == ModeHelp {
		return m.viewHelp()
	}

	left := m.viewControls()
	right := m.palette.Frame().Render(
		m.palette.Title().Render("Preview") + "\n" + m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var bottom string
	if m.statusMsg != "" {
		bottom = m.palette.Status(m.statusErr).Render(m.statusMsg)
	} else if m.cfg == nil || m.cfg.TUI.ShowHelp {
		bottom = m.help.View(m.keys)
	}

	return body + "\n" + bottom
}

// viewControls renders the control pane with the current values.
func (m Model) viewControls() string {
	var b strings.Builder

	b.WriteString(m.palette.Title().Render("Preferences"))
	b.WriteString("\n\n")

	for i, c := range controls {
		label := c.label
		value := m.controlValue(c.key)

		row := fmt.Sprintf("%-15s %s", label, m.palette.Value().Render(value))
		if i == m.cursor {
			row = m.palette.Selected().Render("› ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(m.palette.Label().Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.palette.Title().Render("Presets"))
	b.WriteString("\n\n")
	for i, name := range prefs.PresetNames() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.palette.Value().Render(fmt.Sprintf("%d", i+1)),
			m.palette.Label().Render(name)))
	}

	return lipgloss.NewStyle().Width(panelWidth).Render(b.String())
}

// controlValue renders the display value for one control, with units.
func (m Model) controlValue(k prefs.Key) string {
	switch k {
	case prefs.KeyTheme:
		return m.projection.ThemeAttr
	case prefs.KeyFontFamily:
		return string(m.snapshot.FontFamily)
	case prefs.KeyFontSize:
		return m.projection.FontSize
	case prefs.KeyLineHeight:
		return m.projection.LineHeight
	case prefs.KeyLetterSpacing:
		return m.projection.LetterSpacing
	case prefs.KeyWordSpacing:
		return m.projection.WordSpacing
	case prefs.KeyMaxLineWidth:
		return m.projection.MaxWidth
	case prefs.KeyParagraphSpacing:
		return m.projection.ParagraphSpacing
	}
	return ""
}

func (m Model) viewHelp() string {
	titleStyle := m.palette.Title().MarginBottom(1)
	sectionStyle := m.palette.Label()
	keyStyle := m.palette.Value()

	s := titleStyle.Render("Keyboard Shortcuts") + "\n\n"

	s += sectionStyle.Render("Navigation") + "\n"
	s += keyStyle.Render("  j/k, ↑/↓") + "     Previous/next control\n"
	s += keyStyle.Render("  h/l, ←/→") + "     Decrease/increase value\n"
	s += keyStyle.Render("  pgup/pgdn") + "    Scroll preview\n"
	s += "\n"

	s += sectionStyle.Render("Actions") + "\n"
	s += keyStyle.Render("  1-4") + "          Apply preset\n"
	s += keyStyle.Render("  p") + "            Paste preview text from clipboard\n"
	s += keyStyle.Render("  x") + "            Clear pasted text\n"
	s += keyStyle.Render("  r") + "            Reset to defaults\n"
	s += "\n"

	s += sectionStyle.Render("General") + "\n"
	s += keyStyle.Render("  ?") + "            Toggle this help\n"
	s += keyStyle.Render("  q") + "            Quit\n"

	s += "\n" + sectionStyle.Render("Press ? or q to return")

	return s
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config      *config.Config
	Store       *prefs.Store
	RecordsPath string // Path to watch for external changes (empty = no watching)
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	s := opts.Store
	if s == nil {
		s = prefs.NewStore(prefs.Defaults(), nil)
	}

	// Start file watcher so edits from another terminal show up live
	var watcher *prefs.FileWatcher
	if opts.RecordsPath != "" {
		var err error
		watcher, err = prefs.NewFileWatcher(s, opts.RecordsPath)
		if err == nil {
			err = watcher.Start()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to watch records file: %v\n", err)
			watcher = nil
		}
	}

	m := New(opts.Config, s)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()

	if watcher != nil {
		watcher.Stop()
	}

	return err
}
