package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderGameView displays the board, the guess input and the found words
func (m *Model) renderGameView() string {
	var b strings.Builder
	size := m.engine.Board().Size()
	fmt.Fprintf(&b, "-- Word Hunt (%dx%d board, words of %d+ letters) --\n", size, size, m.minLength)
	for _, line := range m.loadSummaryLines() {
		fmt.Fprintf(&b, "%s\n", line)
	}
	b.WriteString("\n")

	b.WriteString(boardFrame.Render(m.renderBoard()))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s\n\n", m.input.View())
	fmt.Fprintf(&b, "Score %s  Found %d\n", scoreColor.Render(fmt.Sprintf("%d", m.score)), m.found.Len())
	for _, line := range chunk(m.found.Words(), wordsPerFoundLine) {
		fmt.Fprintf(&b, "  %s\n", strings.Join(line, " "))
	}

	if m.showRevealed {
		b.WriteString("\n")
		b.WriteString(m.renderRevealed())
	}

	if m.statusMessage != "" {
		fmt.Fprintf(&b, "\n%s\n", formatStatus(m.statusMessage, m.statusKind))
	}
	b.WriteString("\n[enter]submit  [ctrl+r]reveal  [ctrl+q]quit")
	return b.String()
}

// renderBoard lays the tiles out in rows, highlighting the last found path
func (m *Model) renderBoard() string {
	board := m.engine.Board()
	onPath := make(map[int]bool, len(m.highlight))
	for _, index := range m.highlight {
		onPath[index] = true
	}
	start := -1
	if len(m.highlight) > 0 {
		start = m.highlight[0]
	}

	rows := make([]string, 0, board.Size())
	for y := 0; y < board.Size(); y++ {
		cells := make([]string, 0, board.Size())
		for x := 0; x < board.Size(); x++ {
			index := board.Index(x, y)
			cells = append(cells, formatTile(board.TileAt(index), onPath[index], index == start))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderRevealed lists every word on the board, dimming those not yet found
func (m *Model) renderRevealed() string {
	var b strings.Builder
	fmt.Fprintf(&b, "All words (%d)\n", len(m.revealed))
	words := m.revealed
	hidden := 0
	if len(words) > maxRevealDisplay {
		hidden = len(words) - maxRevealDisplay
		words = words[:maxRevealDisplay]
	}

	styled := make([]string, len(words))
	for i, word := range words {
		if m.found.Contains(word) {
			styled[i] = word
		} else {
			styled[i] = dimmedColor.Render(word)
		}
	}
	for _, line := range chunk(styled, wordsPerFoundLine) {
		fmt.Fprintf(&b, "  %s\n", strings.Join(line, " "))
	}
	if hidden > 0 {
		fmt.Fprintf(&b, "  ... and %d more\n", hidden)
	}
	return b.String()
}

// loadSummaryLines generates status lines describing the data load results
func (m *Model) loadSummaryLines() []string {
	lines := []string{fmt.Sprintf("Lexicon: %d words", m.summary.Words)}
	if !m.summary.HasIssues() {
		return append(lines, noIssuesColor.Render("Load issues: none"))
	}
	first := m.summary.Issues[0]
	stage := strings.ToUpper(first.Stage)
	if stage == "" {
		stage = "GENERAL"
	}
	if len(m.summary.Issues) == 1 {
		return append(lines, issuesColor.Render(fmt.Sprintf("Load issue: [%s] line %d: %s", stage, first.Line, first.Message)))
	}
	return append(lines, issuesColor.Render(fmt.Sprintf("Load issues: %d (first: [%s] line %d: %s)", len(m.summary.Issues), stage, first.Line, first.Message)))
}

func chunk(words []string, n int) [][]string {
	var out [][]string
	for len(words) > n {
		out = append(out, words[:n])
		words = words[n:]
	}
	if len(words) > 0 {
		out = append(out, words)
	}
	return out
}
