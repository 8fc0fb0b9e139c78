package search

import "slices"

// ResultSet is a set of words kept in lexicographic order.
type ResultSet struct {
	words []string
}

// NewResultSet creates a set holding words.
func NewResultSet(words ...string) *ResultSet {
	rs := &ResultSet{}
	for _, w := range words {
		rs.Add(w)
	}
	return rs
}

// Add inserts word, reporting whether it was new.
func (rs *ResultSet) Add(word string) bool {
	i, found := slices.BinarySearch(rs.words, word)
	if found {
		return false
	}
	rs.words = slices.Insert(rs.words, i, word)
	return true
}

// Contains reports whether word is in the set.
func (rs *ResultSet) Contains(word string) bool {
	_, found := slices.BinarySearch(rs.words, word)
	return found
}

// Len returns the number of words.
func (rs *ResultSet) Len() int {
	return len(rs.words)
}

// Words returns the words in order. The slice is a copy.
func (rs *ResultSet) Words() []string {
	return slices.Clone(rs.words)
}
