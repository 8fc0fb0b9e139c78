package lexicon

import (
	"errors"
	"testing"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

func TestTrieInsertAndContains(t *testing.T) {
	trie := NewTrie()

	words := []string{"LENT", "LENTIL", "ALEPOT", "benthal", "Pelean", "TOECAP", "X-RAY"}
	for _, word := range words {
		if err := trie.Insert(word); err != nil {
			t.Fatalf("Insert(%q): %v", word, err)
		}
	}

	tests := []struct {
		word     string
		expected bool
	}{
		{"LENT", true},
		{"lent", true},
		{"LENTIL", true},
		{"LENTI", false}, // prefix only
		{"BENTHAL", true},
		{"PELEAN", true},
		{"X-RAY", true},
		{"X?RAY", true}, // shares the other bucket with '-'
		{"POPE", false},
		{"TOECAPS", false},
	}

	for _, test := range tests {
		if got := trie.Contains(test.word); got != test.expected {
			t.Errorf("Contains(%q): expected %t, got %t", test.word, test.expected, got)
		}
	}
}

func TestTrieEveryPrefixOfEveryWord(t *testing.T) {
	trie := NewTrie()
	words := []string{"ALEPOT", "BENTHAL", "PELEAN", "TOECAP", "LENT"}
	for _, word := range words {
		if err := trie.Insert(word); err != nil {
			t.Fatalf("Insert(%q): %v", word, err)
		}
	}

	for _, word := range words {
		for i := 1; i <= len(word); i++ {
			if !trie.HasPrefix(word[:i]) {
				t.Errorf("HasPrefix(%q) should be true for inserted word %q", word[:i], word)
			}
		}
		if !trie.Contains(word) {
			t.Errorf("Contains(%q) should be true", word)
		}
	}

	for _, prefix := range []string{"Z", "LEX", "TOECAPS", "Q"} {
		if trie.HasPrefix(prefix) {
			t.Errorf("HasPrefix(%q) should be false", prefix)
		}
	}
}

func TestTrieInsertIsIdempotent(t *testing.T) {
	trie := NewTrie()
	for i := 0; i < 3; i++ {
		if err := trie.Insert("lent"); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := trie.Insert("LENT"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if trie.Len() != 1 {
		t.Errorf("Expected 1 word, got %d", trie.Len())
	}
}

func TestTrieRejectsEmptyWord(t *testing.T) {
	trie := NewTrie()
	err := trie.Insert("")
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("Expected ErrInvalidArgument, got %v", err)
	}
	if trie.Contains("") {
		t.Errorf("empty word must never be a member")
	}
}

func TestSymbolOf(t *testing.T) {
	tests := []struct {
		in       byte
		expected Symbol
	}{
		{'A', SymbolA},
		{'Z', SymbolZ},
		{'M', Symbol(12)},
		{'-', Other},
		{'a', Other}, // callers upper-case first
		{'7', Other},
	}
	for _, test := range tests {
		if got := SymbolOf(test.in); got != test.expected {
			t.Errorf("SymbolOf(%q): expected %d, got %d", test.in, test.expected, got)
		}
	}
}
