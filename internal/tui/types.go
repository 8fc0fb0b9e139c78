package tui

import (
	"time"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
	"git.sr.ht/~jakintosh/wordhunt/internal/search"
	"github.com/charmbracelet/bubbles/textinput"
)

// Constants define UI behavior
const (
	statusDuration    = 5 * time.Second
	maxRevealDisplay  = 60
	guessCharLimit    = 32
	wordsPerFoundLine = 6
)

// statusKind represents the type of status message being displayed
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// Model is the main application state container for the TUI
type Model struct {
	engine    *search.Engine
	minLength int
	summary   core.LoadSummary

	input     textinput.Model
	found     *search.ResultSet
	score     int
	highlight []int

	revealed     []string
	showRevealed bool

	statusMessage string
	statusKind    statusKind
	statusExpiry  time.Time
	err           error
}

// statusTick is sent periodically to update status message expiry
type statusTick struct{}
