// Package tui implements a terminal word-hunt game. The player types words
// found on the board; each accepted word has its tile path highlighted and
// adds to the running score. The full list of words can be revealed at any time.
package tui

import (
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/wordhunt/internal/search"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates a new TUI model over an engine with a loaded lexicon
func NewModel(engine *search.Engine, minLength int) *Model {
	input := textinput.New()
	input.Placeholder = "type a word"
	input.Prompt = "> "
	input.CharLimit = guessCharLimit
	input.Focus()

	return &Model{
		engine:    engine,
		minLength: minLength,
		summary:   engine.Summary(),
		input:     input,
		found:     search.NewResultSet(),
	}
}

// Init initializes the model and returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} }),
	)
}

// Update handles incoming messages and updates the model state
func (m *Model) Update(msg tea.Msg) (updated tea.Model, cmd tea.Cmd) {
	defer func() {
		if recovered := recover(); recovered != nil {
			m.err = fmt.Errorf("unexpected internal error: %v", recovered)
			updated = m
			cmd = nil
		}
	}()

	if m.err != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+q", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case statusTick:
		if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
			m.statusMessage = ""
			m.statusExpiry = time.Time{}
		}
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} })
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the game screen
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress ctrl+q to quit.", m.err)
	}
	return m.renderGameView()
}

// Found returns the words the player has found so far, in order
func (m *Model) Found() []string {
	return m.found.Words()
}

// Score returns the player's current score
func (m *Model) Score() int {
	return m.score
}
