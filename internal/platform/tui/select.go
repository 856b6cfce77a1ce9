package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// SelectModel is the Bubble Tea model for the character select screen.
type SelectModel struct {
	characters     []runner.Character
	best           map[int]*storage.CharacterStats
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *runner.Character
	openScoreboard bool
}

// NewSelectModel creates the character select screen, starting on
// initial. The store may be nil.
func NewSelectModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, initial runner.CharacterID) SelectModel {
	m := SelectModel{
		characters: runner.Characters(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	if int(initial) >= 0 && int(initial) < len(m.characters) {
		m.cursor = int(initial)
	}
	if store != nil {
		stats, err := store.CharacterStats()
		if err != nil && logger != nil {
			logger.Warn("could not load character stats", "err", err)
		}
		m.best = stats
	}
	return m
}

// Init initializes the select model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the select screen.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m SelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick a character directly.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if i := int(s[0] - '1'); i < len(m.characters) {
			m.cursor = i
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.characters)) % len(m.characters)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.characters)

	case MenuActionSelect:
		selected := m.characters[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the roster with the highlighted character's power.
func (m SelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L A N E   R U N N E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your runner", m.width))
	b.WriteString("\n\n")

	for i, c := range m.characters {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.AccentHex))
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true)
		}
		line := fmt.Sprintf("%s%d. %-16s %-14s%s", cursor, i+1, c.Name, c.Power.Name, m.bestFor(c.ID))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	current := m.characters[m.cursor]
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(current.Power.Description), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Choose  |  Enter: Run  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m SelectModel) bestFor(id runner.CharacterID) string {
	if s, ok := m.best[int(id)]; ok && s.Runs > 0 {
		return fmt.Sprintf("  best %d", int(s.HighScore))
	}
	return ""
}

// Selected returns the chosen character, or nil.
func (m SelectModel) Selected() *runner.Character {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m SelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m SelectModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m SelectModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// SelectResult holds the result of running the select screen.
type SelectResult struct {
	Character       runner.CharacterID
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunSelect runs the character select screen.
func RunSelect(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, initial runner.CharacterID) (SelectResult, error) {
	model := NewSelectModel(store, logger, cfg, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{Config: cfg}, err
	}

	m, ok := finalModel.(SelectModel)
	if !ok {
		return SelectResult{Config: cfg, Quit: true}, nil
	}

	result := SelectResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Character = m.Selected().ID
	default:
		result.Quit = true
	}
	return result, nil
}
