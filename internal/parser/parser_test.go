package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLexicon(t *testing.T) {
	input := strings.Join([]string{
		"lent",
		"ALEPOT  some trailing definition",
		"",
		"   ",
		"\tbenthal",
		"x-ray",
		"Pelean",
	}, "\n")

	result, err := ParseLexicon(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"LENT", "ALEPOT", "BENTHAL", "X-RAY", "PELEAN"}, result.Words)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, 6, result.Issues[0].Line)
	assert.Equal(t, "lexicon", result.Issues[0].Stage)
	assert.Contains(t, result.Issues[0].Message, "X-RAY")
}

func TestParseLexiconEmpty(t *testing.T) {
	result, err := ParseLexicon(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result.Words)
	assert.Empty(t, result.Issues)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseLexiconReadError(t *testing.T) {
	_, err := ParseLexicon(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParseLexiconFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("lent\ntoecap\n"), 0644))

	result, err := ParseLexiconFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"LENT", "TOECAP"}, result.Words)

	_, err = ParseLexiconFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseBoard(t *testing.T) {
	input := "# sample board\nE E C A\nA L E P\n\nh n b o\nQ T T Y\n"
	tiles, err := ParseBoard(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"E", "E", "C", "A",
		"A", "L", "E", "P",
		"H", "N", "B", "O",
		"Q", "T", "T", "Y",
	}, tiles)
}

func TestParseTiles(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"E E C A", []string{"E", "E", "C", "A"}},
		{"qu,a,b,c", []string{"QU", "A", "B", "C"}},
		{"  a , b  c\nd ", []string{"A", "B", "C", "D"}},
		{"", nil},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, ParseTiles(test.input), "input %q", test.input)
	}
}
