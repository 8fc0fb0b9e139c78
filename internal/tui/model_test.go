package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/wordhunt/internal/search"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testEngine(t *testing.T) *search.Engine {
	t.Helper()
	engine := search.NewEngine()
	words := "ALEPOT\nBENTHAL\nPELEAN\nTOECAP\nLENT\nALE\nPOPE\n"
	if err := engine.LoadLexicon(strings.NewReader(words)); err != nil {
		t.Fatalf("failed to load lexicon: %v", err)
	}
	return engine
}

func typeWord(m *Model, word string) {
	for _, r := range word {
		m.Update(keyRunes(r))
	}
}

func submit(m *Model, word string) {
	typeWord(m, word)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitAcceptsWordOnBoard(t *testing.T) {
	model := NewModel(testEngine(t), 4)

	submit(model, "lent")

	if !reflect.DeepEqual(model.Found(), []string{"LENT"}) {
		t.Fatalf("expected LENT to be found, got %v (status=%q)", model.Found(), model.statusMessage)
	}
	if model.Score() != 1 {
		t.Fatalf("expected score 1, got %d", model.Score())
	}
	if !reflect.DeepEqual(model.highlight, []int{5, 6, 9, 13}) {
		t.Fatalf("unexpected highlight: %v", model.highlight)
	}
	if model.statusMessage != "Found LENT (+1)" || model.statusKind != statusSuccess {
		t.Fatalf("unexpected status: %q (%v)", model.statusMessage, model.statusKind)
	}
	if model.input.Value() != "" {
		t.Fatalf("expected input to be cleared, got %q", model.input.Value())
	}
}

func TestSubmitRejections(t *testing.T) {
	tests := []struct {
		guess   string
		message string
	}{
		{"ale", "ALE is shorter than 4 letters"},
		{"pope", "POPE is not on the board"},
		{"zzzz", "ZZZZ is not in the dictionary"},
	}

	for _, test := range tests {
		model := NewModel(testEngine(t), 4)
		submit(model, test.guess)

		if len(model.Found()) != 0 {
			t.Errorf("%s: expected nothing found, got %v", test.guess, model.Found())
		}
		if model.statusMessage != test.message {
			t.Errorf("%s: expected status %q, got %q", test.guess, test.message, model.statusMessage)
		}
		if model.statusKind != statusError {
			t.Errorf("%s: expected error status, got %v", test.guess, model.statusKind)
		}
	}
}

func TestSubmitDuplicateScoresOnce(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	submit(model, "BENTHAL")
	submit(model, "benthal")

	if model.Score() != 4 {
		t.Fatalf("expected score 4, got %d", model.Score())
	}
	if model.statusMessage != "BENTHAL was already found" {
		t.Fatalf("unexpected status: %q", model.statusMessage)
	}
}

func TestSubmitEmptyIsIgnored(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.statusMessage != "" {
		t.Fatalf("expected no status, got %q", model.statusMessage)
	}
}

func TestSubmitWithoutLexicon(t *testing.T) {
	model := NewModel(search.NewEngine(), 4)
	submit(model, "LENT")
	if !strings.Contains(model.statusMessage, "lexicon unavailable") {
		t.Fatalf("expected lexicon error, got %q", model.statusMessage)
	}
}

func TestRevealToggles(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	submit(model, "LENT")

	model.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	expected := []string{"ALEPOT", "BENTHAL", "LENT", "PELEAN", "TOECAP"}
	if !model.showRevealed || !reflect.DeepEqual(model.revealed, expected) {
		t.Fatalf("expected revealed %v, got %v (shown=%t)", expected, model.revealed, model.showRevealed)
	}
	if model.statusMessage != "1 of 5 words found" {
		t.Fatalf("unexpected status: %q", model.statusMessage)
	}

	view := model.View()
	if !strings.Contains(view, "All words (5)") {
		t.Fatalf("view missing revealed words: %q", view)
	}

	model.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if model.showRevealed {
		t.Fatalf("expected reveal to toggle off")
	}
	if strings.Contains(model.View(), "All words") {
		t.Fatalf("revealed list should be hidden")
	}
}

func TestGameViewDisplaysSummaryAndBoard(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	view := model.View()

	for _, want := range []string{
		"-- Word Hunt (4x4 board, words of 4+ letters) --",
		"Lexicon: 7 words",
		"Load issues: none",
		"[enter]submit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}

func TestLoadIssuesShown(t *testing.T) {
	engine := search.NewEngine()
	if err := engine.LoadLexicon(strings.NewReader("lent\nx-ray\nco-op\n")); err != nil {
		t.Fatalf("load: %v", err)
	}
	model := NewModel(engine, 4)
	view := model.View()
	if !strings.Contains(view, "Load issues: 2 (first: [LEXICON] line 2:") {
		t.Fatalf("view missing issue summary: %q", view)
	}
}

func TestStatusExpires(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	model.setStatus("hello", statusInfo)
	model.statusExpiry = time.Now().Add(-time.Second)

	model.Update(statusTick{})
	if model.statusMessage != "" {
		t.Fatalf("expected status to expire, got %q", model.statusMessage)
	}
}

func TestErrorStateOnlyQuits(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	model.err = errors.New("boom")

	if !strings.Contains(model.View(), "Error: boom") {
		t.Fatalf("unexpected error view: %q", model.View())
	}
	if _, cmd := model.Update(keyRunes('a')); cmd != nil {
		t.Fatalf("expected no command for ordinary keys in error state")
	}
	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlQ}); cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestGameFlow(t *testing.T) {
	model := NewModel(testEngine(t), 4)
	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(80, 30))

	for _, word := range []string{"lent", "toecap", "pope"} {
		for _, r := range word {
			tm.Send(keyRunes(r))
		}
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	}
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlQ})

	finalModel := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	model = finalModel.(*Model)

	if !reflect.DeepEqual(model.Found(), []string{"LENT", "TOECAP"}) {
		t.Fatalf("unexpected found words: %v (status=%q)", model.Found(), model.statusMessage)
	}
	if model.Score() != 1+3 {
		t.Fatalf("expected score 4, got %d", model.Score())
	}
	if model.statusMessage != "POPE is not on the board" {
		t.Fatalf("unexpected final status: %q", model.statusMessage)
	}
}
