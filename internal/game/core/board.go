package core

import "math"

const (
	// FreeID marks a cell nobody has claimed yet.
	FreeID = 0

	// MaxCells bounds width*height so every cell index fits in an int32.
	MaxCells = math.MaxInt32

	// MaxDimension is the largest accepted width, height, player count or area count.
	MaxDimension uint64 = math.MaxUint32
)

// Board is the grid of cell owners.
// Owner: 0 means free; 1..N are player IDs.
type Board struct {
	W, H int
	T    []int // length = W*H (row-major)
}

// NewBoard allocates an empty board. Callers validate dimensions first.
func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, T: make([]int, w*h)}
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }
func (b *Board) Cells() int            { return len(b.T) }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the owner of (x, y). The coordinates must be in bounds.
func (b *Board) Get(x, y int) int {
	return b.T[b.Idx(x, y)]
}

// Set changes the owner of (x, y). The coordinates must be in bounds.
func (b *Board) Set(x, y, owner int) {
	b.T[b.Idx(x, y)] = owner
}

// Neighbor returns the index of the cell next to idx in direction d.
// ok is false when that cell would fall off the board.
func (b *Board) Neighbor(idx int, d Direction) (int, bool) {
	x, y := b.XY(idx)
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	if !b.InBounds(nx, ny) {
		return -1, false
	}
	return b.Idx(nx, ny), true
}

// CountNeighborsOwnedBy returns how many of the 4-neighbors of idx belong to owner.
func (b *Board) CountNeighborsOwnedBy(idx, owner int) int {
	count := 0
	for _, d := range Directions {
		if n, ok := b.Neighbor(idx, d); ok && b.T[n] == owner {
			count++
		}
	}
	return count
}

// IsAdjacentTo reports whether any 4-neighbor of idx belongs to owner.
func (b *Board) IsAdjacentTo(idx, owner int) bool {
	for _, d := range Directions {
		if n, ok := b.Neighbor(idx, d); ok && b.T[n] == owner {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{W: b.W, H: b.H, T: make([]int, len(b.T))}
	copy(c.T, b.T)
	return c
}
