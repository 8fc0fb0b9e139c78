package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes key presses to game actions or the guess input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.submitGuess()
		return m, nil
	case "ctrl+r":
		m.toggleReveal()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitGuess checks the typed word and records it when it scores
func (m *Model) submitGuess() {
	word := strings.ToUpper(strings.TrimSpace(m.input.Value()))
	m.input.Reset()
	if word == "" {
		return
	}

	if len(word) < m.minLength {
		m.setStatus(fmt.Sprintf("%s is shorter than %d letters", word, m.minLength), statusError)
		return
	}
	if m.found.Contains(word) {
		m.setStatus(fmt.Sprintf("%s was already found", word), statusInfo)
		return
	}

	ok, err := m.engine.ContainsWord(word)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot check %s: %v", word, err), statusError)
		return
	}
	if !ok {
		m.setStatus(fmt.Sprintf("%s is not in the dictionary", word), statusError)
		return
	}

	path, err := m.engine.Locate(word)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot locate %s: %v", word, err), statusError)
		return
	}
	if path == nil {
		m.setStatus(fmt.Sprintf("%s is not on the board", word), statusError)
		return
	}

	m.found.Add(word)
	m.highlight = path
	if score, err := m.engine.Score(m.found.Words(), m.minLength); err == nil {
		m.score = score
	}
	points, err := m.engine.Rule().Points(len(word), m.minLength)
	if err != nil {
		m.setStatus(fmt.Sprintf("Found %s", word), statusSuccess)
		return
	}
	m.setStatus(fmt.Sprintf("Found %s (+%d)", word, points), statusSuccess)
}

// toggleReveal shows or hides every word on the board
func (m *Model) toggleReveal() {
	if m.showRevealed {
		m.showRevealed = false
		return
	}

	results, err := m.engine.FindAllWords(m.minLength)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot list words: %v", err), statusError)
		return
	}
	m.revealed = results.Words()
	m.showRevealed = true
	m.setStatus(fmt.Sprintf("%d of %d words found", m.found.Len(), len(m.revealed)), statusInfo)
}

func (m *Model) setStatus(message string, kind statusKind) {
	m.statusMessage = message
	m.statusKind = kind
	m.statusExpiry = time.Now().Add(statusDuration)
}
