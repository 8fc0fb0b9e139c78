// Package path tracks an ordered, non-repeating walk across board positions
// and the word spelled by its tiles.
package path

import (
	"fmt"

	"git.sr.ht/~jakintosh/wordhunt/internal/board"
	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

// Path is a stack of board positions. Push and Pop are the only mutations;
// a position can appear at most once.
type Path struct {
	board   *board.Board
	indices []int
	visited []bool
	ends    []int // length of word after each push
	word    []byte
}

// New creates an empty path over b.
func New(b *board.Board) *Path {
	return &Path{
		board:   b,
		indices: make([]int, 0, b.Len()),
		visited: make([]bool, b.Len()),
		ends:    make([]int, 0, b.Len()),
		word:    make([]byte, 0, b.Len()),
	}
}

// Push appends index to the path.
func (p *Path) Push(index int) error {
	if index < 0 || index >= len(p.visited) {
		return fmt.Errorf("position %d outside board: %w", index, core.ErrInvalidArgument)
	}
	if p.visited[index] {
		return fmt.Errorf("position %d already on path: %w", index, core.ErrInvalidArgument)
	}
	p.visited[index] = true
	p.indices = append(p.indices, index)
	p.word = append(p.word, p.board.TileAt(index)...)
	p.ends = append(p.ends, len(p.word))
	return nil
}

// Pop removes the last position. It is a no-op on an empty path.
func (p *Path) Pop() {
	if len(p.indices) == 0 {
		return
	}
	last := len(p.indices) - 1
	p.visited[p.indices[last]] = false
	p.indices = p.indices[:last]
	p.ends = p.ends[:last]
	if last == 0 {
		p.word = p.word[:0]
		return
	}
	p.word = p.word[:p.ends[last-1]]
}

// Contains reports whether index is on the path.
func (p *Path) Contains(index int) bool {
	return index >= 0 && index < len(p.visited) && p.visited[index]
}

// Len returns the number of positions on the path.
func (p *Path) Len() int {
	return len(p.indices)
}

// Last returns the most recently pushed position, or -1 when empty.
func (p *Path) Last() int {
	if len(p.indices) == 0 {
		return -1
	}
	return p.indices[len(p.indices)-1]
}

// Word returns the tiles along the path concatenated.
func (p *Path) Word() string {
	return string(p.word)
}

// Indices returns a copy of the positions in order.
func (p *Path) Indices() []int {
	return append([]int(nil), p.indices...)
}
