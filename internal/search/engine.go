// Package search finds words on a letter grid. An Engine owns one lexicon and
// one board; it enumerates every lexicon word that can be traced across
// adjacent tiles, locates single words, and scores word sets.
package search

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"git.sr.ht/~jakintosh/wordhunt/internal/board"
	"git.sr.ht/~jakintosh/wordhunt/internal/core"
	"git.sr.ht/~jakintosh/wordhunt/internal/lexicon"
	"git.sr.ht/~jakintosh/wordhunt/internal/parser"
	"git.sr.ht/~jakintosh/wordhunt/internal/path"
	"git.sr.ht/~jakintosh/wordhunt/internal/scoring"
)

var tracer = otel.Tracer("git.sr.ht/~jakintosh/wordhunt/internal/search")

// Engine answers word queries against a board. The lexicon and board are
// replaced as whole values and never mutated in place, so a search always
// sees one consistent pair.
type Engine struct {
	lexicon *lexicon.Trie
	board   *board.Board
	rule    *scoring.Rule
	issues  []core.LoadIssue
}

// NewEngine creates an engine holding the default board, the default scoring
// rule, and no lexicon.
func NewEngine() *Engine {
	return &Engine{
		board: board.Default(),
		rule:  scoring.DefaultRule(),
	}
}

// SetRule replaces the scoring rule. A nil rule restores the default.
func (e *Engine) SetRule(rule *scoring.Rule) {
	if rule == nil {
		rule = scoring.DefaultRule()
	}
	e.rule = rule
}

// Rule returns the scoring rule in use.
func (e *Engine) Rule() *scoring.Rule {
	return e.rule
}

// LoadLexiconFile loads a newline-delimited word list from filePath.
func (e *Engine) LoadLexiconFile(filePath string) error {
	result, err := parser.ParseLexiconFile(filePath)
	if err != nil {
		e.dropLexicon()
		return fmt.Errorf("%w: %s: %w", core.ErrLoadFailure, filePath, err)
	}
	return e.install(result)
}

// LoadLexicon loads a newline-delimited word list. On failure any previous
// lexicon is dropped, so later queries report ErrLexiconUnavailable.
func (e *Engine) LoadLexicon(r io.Reader) error {
	result, err := parser.ParseLexicon(r)
	if err != nil {
		e.dropLexicon()
		return fmt.Errorf("%w: %w", core.ErrLoadFailure, err)
	}
	return e.install(result)
}

// LoadWords loads words directly. It follows the same rules as LoadLexicon.
func (e *Engine) LoadWords(words []string) error {
	return e.install(parser.LexiconResult{Words: words})
}

func (e *Engine) install(result parser.LexiconResult) error {
	trie := lexicon.NewTrie()
	for _, word := range result.Words {
		if err := trie.Insert(word); err != nil {
			e.dropLexicon()
			return fmt.Errorf("%w: %w", core.ErrLoadFailure, err)
		}
	}

	e.lexicon = trie
	e.issues = result.Issues
	log.Debug().
		Int("words", trie.Len()).
		Int("issues", len(result.Issues)).
		Msg("lexicon loaded")
	return nil
}

func (e *Engine) dropLexicon() {
	e.lexicon = nil
	e.issues = nil
}

// SetBoard replaces the board with tiles given in row-major order. On error
// the previous board stays in place.
func (e *Engine) SetBoard(tiles []string) error {
	b, err := board.New(tiles)
	if err != nil {
		return err
	}
	e.board = b
	log.Debug().Int("size", b.Size()).Msg("board set")
	return nil
}

// Board returns the current board.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Summary describes the loaded lexicon and board.
func (e *Engine) Summary() core.LoadSummary {
	summary := core.LoadSummary{
		BoardSize: e.board.Size(),
		Issues:    append([]core.LoadIssue(nil), e.issues...),
	}
	if e.lexicon != nil {
		summary.Words = e.lexicon.Len()
	}
	return summary
}

func (e *Engine) requireLexicon() (*lexicon.Trie, error) {
	if e.lexicon == nil {
		return nil, core.ErrLexiconUnavailable
	}
	return e.lexicon, nil
}

// ContainsWord reports whether word is in the lexicon.
func (e *Engine) ContainsWord(word string) (bool, error) {
	trie, err := e.requireLexicon()
	if err != nil {
		return false, err
	}
	if word == "" {
		return false, fmt.Errorf("empty word: %w", core.ErrInvalidArgument)
	}
	return trie.Contains(word), nil
}

// HasPrefix reports whether some lexicon word starts with prefix.
func (e *Engine) HasPrefix(prefix string) (bool, error) {
	trie, err := e.requireLexicon()
	if err != nil {
		return false, err
	}
	if prefix == "" {
		return false, fmt.Errorf("empty prefix: %w", core.ErrInvalidArgument)
	}
	return trie.HasPrefix(prefix), nil
}

// FindAllWords returns every lexicon word of at least minLength letters that
// can be spelled along a path of adjacent tiles without reusing a tile.
func (e *Engine) FindAllWords(minLength int) (*ResultSet, error) {
	return e.FindAllWordsContext(context.Background(), minLength)
}

// FindAllWordsContext is FindAllWords with a deadline checked before each
// starting tile.
func (e *Engine) FindAllWordsContext(ctx context.Context, minLength int) (*ResultSet, error) {
	b := e.board
	ctx, span := tracer.Start(ctx, "search.FindAllWords", trace.WithAttributes(
		attribute.Int("min_length", minLength),
		attribute.Int("board_size", b.Size()),
	))
	defer span.End()

	fail := func(err error) (*ResultSet, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if minLength < 1 {
		return fail(fmt.Errorf("minimum length %d: %w", minLength, core.ErrInvalidArgument))
	}
	trie, err := e.requireLexicon()
	if err != nil {
		return fail(err)
	}

	results := NewResultSet()
	w := newWalker(b, trie.HasPrefix, func(p *path.Path) bool {
		word := p.Word()
		if len(word) >= minLength && trie.Contains(word) {
			results.Add(word)
		}
		return false
	})

	for start := 0; start < b.Len(); start++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		w.from(start)
	}

	span.SetAttributes(attribute.Int("results", results.Len()))
	log.Debug().Int("min_length", minLength).Int("results", results.Len()).Msg("enumerated board")
	return results, nil
}

// Locate returns the positions of one occurrence of word on the board, or
// nil when it does not occur. Lexicon membership is not checked; when
// several occurrences exist the first in row-major search order is returned.
func (e *Engine) Locate(word string) ([]int, error) {
	if _, err := e.requireLexicon(); err != nil {
		return nil, err
	}
	if word == "" {
		return nil, fmt.Errorf("empty word: %w", core.ErrInvalidArgument)
	}

	target := strings.ToUpper(word)
	b := e.board
	w := newWalker(b,
		func(candidate string) bool { return strings.HasPrefix(target, candidate) },
		func(p *path.Path) bool { return p.Word() == target },
	)

	for start := 0; start < b.Len(); start++ {
		if w.from(start) {
			return w.path.Indices(), nil
		}
	}
	return nil, nil
}

// Score sums the points of the scorable words in words under the engine's
// rule. See scoring.Rule.Score.
func (e *Engine) Score(words []string, minLength int) (int, error) {
	if minLength < 1 {
		return 0, fmt.Errorf("minimum length %d: %w", minLength, core.ErrInvalidArgument)
	}
	if _, err := e.requireLexicon(); err != nil {
		return 0, err
	}
	return e.rule.Score(e, words, minLength)
}
