// Package lexicon stores a word list in a prefix tree keyed by a fixed
// upper-case alphabet, answering exact-word and prefix membership queries.
package lexicon

import (
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

// Symbol is one branch of a trie node.
type Symbol uint8

// The alphabet is A through Z followed by a single bucket shared by every
// other character.
const (
	SymbolA     Symbol = 0
	SymbolZ     Symbol = 25
	Other       Symbol = 26
	AlphabetLen        = 27
)

// SymbolOf maps an upper-case byte to its branch.
func SymbolOf(c byte) Symbol {
	if c >= 'A' && c <= 'Z' {
		return Symbol(c - 'A')
	}
	return Other
}

// TrieNode represents a node in the Trie data structure.
type TrieNode struct {
	children [AlphabetLen]*TrieNode
	isWord   bool
}

// Trie is a prefix tree over upper-cased words.
type Trie struct {
	root  *TrieNode
	words int
}

// NewTrie creates a new empty Trie.
func NewTrie() *Trie {
	return &Trie{root: &TrieNode{}}
}

// Insert adds a word to the Trie. Inserting a word twice has no effect.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return fmt.Errorf("insert empty word: %w", core.ErrInvalidArgument)
	}
	word = strings.ToUpper(word)

	current := t.root
	for i := 0; i < len(word); i++ {
		s := SymbolOf(word[i])
		if current.children[s] == nil {
			current.children[s] = &TrieNode{}
		}
		current = current.children[s]
	}
	if !current.isWord {
		current.isWord = true
		t.words++
	}
	return nil
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	node := t.walk(word)
	return node != nil && node.isWord
}

// HasPrefix reports whether some inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words in the Trie.
func (t *Trie) Len() int {
	return t.words
}

// walk follows s from the root, returning nil when the path leaves the tree.
func (t *Trie) walk(s string) *TrieNode {
	s = strings.ToUpper(s)
	current := t.root
	for i := 0; i < len(s); i++ {
		current = current.children[SymbolOf(s[i])]
		if current == nil {
			return nil
		}
	}
	return current
}
