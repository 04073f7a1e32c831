// Package tui provides the Bubble Tea integration for hueguess.
// It handles the terminal UI loop, input mapping, and the round flow
// around the pure game engine.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mavrk/hueguess/internal/config"
	"github.com/mavrk/hueguess/internal/game"
)

// advanceMsg triggers the deferred move to the next round after a
// correct guess. The delay itself is presentation behavior; the engine
// knows nothing about it.
type advanceMsg time.Time

// advanceCmd schedules the next-round transition.
func advanceCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return advanceMsg(time.Now()) }
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return advanceMsg(t)
	})
}

// Model is the Bubble Tea model for a hueguess session.
type Model struct {
	session *game.Session
	cfg     config.GameConfig

	cursor  int
	rounds  int
	missed  map[int]bool // Option indexes guessed wrong in the current round
	message string
	locked  bool // True while waiting to auto-advance after a correct guess

	keys   KeyMap
	help   help.Model
	width  int
	height int

	quitting bool
}

// NewModel creates a model around an existing game session.
func NewModel(session *game.Session, cfg config.GameConfig) Model {
	return Model{
		session: session,
		cfg:     cfg,
		rounds:  1,
		missed:  make(map[int]bool),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case advanceMsg:
		m.nextRound()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Input is locked between a correct guess and the auto-advance.
	if m.locked {
		return m, nil
	}

	optionCount := len(m.session.Round().Options)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor + optionCount - 1) % optionCount

	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % optionCount

	case key.Matches(msg, m.keys.Guess):
		return m.guess(m.cursor)

	case key.Matches(msg, m.keys.NewRound):
		m.nextRound()

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.rounds = 1
		m.clearRoundState()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		// Digits select and guess a swatch directly.
		if idx := digitIndex(msg.String()); idx >= 0 && idx < optionCount {
			m.cursor = idx
			return m.guess(idx)
		}
	}

	return m, nil
}

// digitIndex maps "1".."9" to option index 0..8, or -1 for other keys.
func digitIndex(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// guess submits the candidate at the given index to the engine.
func (m Model) guess(idx int) (tea.Model, tea.Cmd) {
	round := m.session.Round()
	if idx < 0 || idx >= len(round.Options) {
		return m, nil
	}

	switch m.session.Guess(round.Options[idx]) {
	case game.OutcomeCorrect:
		m.message = "Correct!"
		m.locked = true
		delay := time.Duration(m.cfg.UI.FeedbackDelayMs) * time.Millisecond
		return m, advanceCmd(delay)

	case game.OutcomeIncorrect:
		m.missed[idx] = true
		m.message = "Not quite, try again"

	case game.OutcomeAlreadyResolved:
		// Round already won; wait for the advance.
	}

	return m, nil
}

// nextRound starts a fresh round and resets per-round view state.
func (m *Model) nextRound() {
	m.session.StartRound()
	m.rounds++
	m.clearRoundState()
}

// clearRoundState resets the view state tied to one round.
func (m *Model) clearRoundState() {
	m.cursor = 0
	m.missed = make(map[int]bool)
	m.message = ""
	m.locked = false
}

// Run starts the Bubble Tea program for a local play session.
func Run(cfg config.GameConfig, seed int64) error {
	// Use time-based seed if not specified
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(cfg.Params(), seed)
	model := NewModel(session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
