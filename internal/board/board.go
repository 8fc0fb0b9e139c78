// Package board holds a square grid of letter tiles and its adjacency geometry.
// Positions are numbered in row-major order: on an NxN board the upper left
// tile is 0 and the lower right tile is N*N-1.
package board

import (
	"fmt"
	"math"
	"strings"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

// Visited reports whether a position is already in use.
type Visited interface {
	Contains(index int) bool
}

// Board is an immutable NxN grid of tiles. A tile may hold more than one
// letter, e.g. "QU".
type Board struct {
	size  int
	tiles []string
}

var defaultTiles = []string{
	"E", "E", "C", "A",
	"A", "L", "E", "P",
	"H", "N", "B", "O",
	"Q", "T", "T", "Y",
}

// Default returns the 4x4 board an engine starts with.
func Default() *Board {
	b, _ := New(defaultTiles)
	return b
}

// New builds a board from tiles listed in row-major order.
func New(tiles []string) (*Board, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("no tiles: %w", core.ErrInvalidShape)
	}

	size := int(math.Sqrt(float64(len(tiles))))
	for size*size > len(tiles) {
		size--
	}
	for (size+1)*(size+1) <= len(tiles) {
		size++
	}
	if size*size != len(tiles) {
		return nil, fmt.Errorf("%d tiles do not form a square: %w", len(tiles), core.ErrInvalidShape)
	}

	normalized := make([]string, len(tiles))
	for i, tile := range tiles {
		tile = strings.ToUpper(strings.TrimSpace(tile))
		if tile == "" {
			return nil, fmt.Errorf("tile %d is empty: %w", i, core.ErrInvalidShape)
		}
		normalized[i] = tile
	}

	return &Board{size: size, tiles: normalized}, nil
}

// Size returns N for an NxN board.
func (b *Board) Size() int {
	return b.size
}

// Len returns the number of positions on the board.
func (b *Board) Len() int {
	return len(b.tiles)
}

// TileAt returns the tile at index.
func (b *Board) TileAt(index int) string {
	return b.tiles[index]
}

// Tiles returns a copy of the tiles in row-major order.
func (b *Board) Tiles() []string {
	return append([]string(nil), b.tiles...)
}

// XY converts a position index to column and row.
func (b *Board) XY(index int) (x, y int) {
	return index % b.size, index / b.size
}

// Index converts a column and row to a position index.
func (b *Board) Index(x, y int) int {
	return y*b.size + x
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Neighbors returns the positions adjacent to index, including diagonals,
// that are not in excluding. The 3x3 neighbourhood is scanned row by row so
// the order is stable for a given position. excluding may be nil.
func (b *Board) Neighbors(index int, excluding Visited) []int {
	x, y := b.XY(index)
	neighbors := make([]int, 0, 8)
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if (nx == x && ny == y) || !b.inBounds(nx, ny) {
				continue
			}
			n := b.Index(nx, ny)
			if excluding != nil && excluding.Contains(n) {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Adjacent reports whether two distinct positions touch.
func (b *Board) Adjacent(a, c int) bool {
	if a == c {
		return false
	}
	ax, ay := b.XY(a)
	cx, cy := b.XY(c)
	return abs(ax-cx) <= 1 && abs(ay-cy) <= 1
}

// String renders the board one row per line, e.g. "| E E C A |".
func (b *Board) String() string {
	var builder strings.Builder
	for y := 0; y < b.size; y++ {
		if y > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("| ")
		for x := 0; x < b.size; x++ {
			builder.WriteString(b.tiles[b.Index(x, y)])
			builder.WriteString(" ")
		}
		builder.WriteString("|")
	}
	return builder.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
