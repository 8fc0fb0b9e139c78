package search

import (
	"git.sr.ht/~jakintosh/wordhunt/internal/board"
	"git.sr.ht/~jakintosh/wordhunt/internal/path"
)

// walker runs the prefix-pruned depth-first search shared by enumeration and
// locate. extend decides whether a candidate word is worth following; visit
// sees every accepted path and returns true to stop the whole search.
type walker struct {
	board  *board.Board
	path   *path.Path
	extend func(candidate string) bool
	visit  func(p *path.Path) bool
}

func newWalker(b *board.Board, extend func(string) bool, visit func(*path.Path) bool) *walker {
	return &walker{
		board:  b,
		path:   path.New(b),
		extend: extend,
		visit:  visit,
	}
}

// from searches every path that starts at start. It returns true when visit
// asked to stop; the path is then left holding the stopping walk.
func (w *walker) from(start int) bool {
	if !w.extend(w.board.TileAt(start)) {
		return false
	}
	if err := w.path.Push(start); err != nil {
		return false
	}
	if w.descend() {
		return true
	}
	w.path.Pop()
	return false
}

func (w *walker) descend() bool {
	if w.visit(w.path) {
		return true
	}
	word := w.path.Word()
	for _, n := range w.board.Neighbors(w.path.Last(), w.path) {
		if !w.extend(word + w.board.TileAt(n)) {
			continue
		}
		if err := w.path.Push(n); err != nil {
			continue
		}
		if w.descend() {
			return true
		}
		w.path.Pop()
	}
	return false
}
