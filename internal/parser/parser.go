package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

// LexiconResult contains the words read from a dictionary along with any
// non-fatal issues found on the way.
type LexiconResult struct {
	Words  []string
	Issues []core.LoadIssue
}

// ParseLexiconFile reads a newline-delimited word list from filePath.
func ParseLexiconFile(filePath string) (LexiconResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return LexiconResult{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseLexicon(file)
}

// ParseLexicon reads a word list. The first whitespace-delimited token on
// each line is the word; anything after it is ignored. Words are upper-cased.
// Words containing characters other than A-Z are kept and reported.
func ParseLexicon(r io.Reader) (LexiconResult, error) {
	var (
		words      []string
		issues     []core.LoadIssue
		scanner    = bufio.NewScanner(r)
		lineNumber = 0
	)

	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		// Skip empty lines
		if len(fields) == 0 {
			continue
		}

		word := strings.ToUpper(fields[0])
		if bad := firstNonLetter(word); bad >= 0 {
			issues = append(issues, core.LoadIssue{
				Stage:   "lexicon",
				Line:    lineNumber,
				Message: fmt.Sprintf("word %q contains non-letter %q", word, word[bad]),
			})
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return LexiconResult{}, fmt.Errorf("error reading lexicon: %w", err)
	}

	return LexiconResult{Words: words, Issues: issues}, nil
}

// ParseBoardFile reads board tiles from filePath.
func ParseBoardFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseBoard(file)
}

// ParseBoard reads whitespace-separated tiles in row-major order. Line breaks
// are not significant, so a board may be written one row per line or all on
// one line. Lines starting with '#' are comments.
func ParseBoard(r io.Reader) ([]string, error) {
	var (
		tiles   []string
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tile := range strings.Fields(line) {
			tiles = append(tiles, strings.ToUpper(tile))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading board: %w", err)
	}

	return tiles, nil
}

// ParseTiles splits an inline tile list such as "E E C A A L E P ...".
// Commas are accepted as separators.
func ParseTiles(s string) []string {
	return ParseBoardString(strings.ReplaceAll(s, ",", " "))
}

// ParseBoardString is ParseBoard over an in-memory string.
func ParseBoardString(s string) []string {
	tiles, _ := ParseBoard(strings.NewReader(s))
	return tiles
}

// firstNonLetter returns the index of the first byte outside A-Z, or -1.
func firstNonLetter(word string) int {
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return i
		}
	}
	return -1
}
