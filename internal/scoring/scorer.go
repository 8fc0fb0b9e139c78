package scoring

import (
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

// Judge answers the two questions a word must pass to score.
type Judge interface {
	ContainsWord(word string) (bool, error)
	Locate(word string) ([]int, error)
}

// Score sums the points of every scorable word. A word scores when it has
// at least minimum letters, is in the lexicon, and occurs on the board.
// Words are case-insensitive and counted once.
func (r *Rule) Score(judge Judge, words []string, minimum int) (int, error) {
	if minimum < 1 {
		return 0, fmt.Errorf("minimum length %d: %w", minimum, core.ErrInvalidArgument)
	}

	seen := make(map[string]bool, len(words))
	total := 0
	for _, word := range words {
		word = strings.ToUpper(strings.TrimSpace(word))
		if seen[word] || len(word) < minimum {
			continue
		}
		seen[word] = true

		ok, err := judge.ContainsWord(word)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		path, err := judge.Locate(word)
		if err != nil {
			return 0, err
		}
		if len(path) == 0 {
			continue
		}

		points, err := r.Points(len(word), minimum)
		if err != nil {
			return 0, fmt.Errorf("scoring %q: %w", word, err)
		}
		total += points
	}
	return total, nil
}
