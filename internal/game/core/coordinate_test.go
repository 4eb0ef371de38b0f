package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_IndexRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		index int
		width int
		coord Coordinate
	}{
		{"TopLeft", 0, 10, Coordinate{0, 0}},
		{"EndOfRow", 9, 10, Coordinate{9, 0}},
		{"SecondRow", 10, 10, Coordinate{0, 1}},
		{"SmallBoard", 7, 4, Coordinate{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.coord, FromIndex(tt.index, tt.width))
			assert.Equal(t, tt.index, tt.coord.ToIndex(tt.width))
		})
	}
}

func TestDirection_Offset(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Right, 1, 0},
		{Down, 0, 1},
		{Left, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Offset()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}

	dx, dy := Direction(9).Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestCoordinate_Neighbors(t *testing.T) {
	c := NewCoordinate(2, 2)
	assert.Equal(t, []Coordinate{{2, 1}, {3, 2}, {2, 3}, {1, 2}}, c.Neighbors())

	for _, n := range c.Neighbors() {
		assert.True(t, c.IsAdjacentTo(n), "%s should be adjacent to %s", n, c)
	}
	assert.False(t, c.IsAdjacentTo(Coordinate{3, 3}))
	assert.False(t, c.IsAdjacentTo(c))
}

func TestCoordinate_ValidNeighbors(t *testing.T) {
	assert.Len(t, NewCoordinate(0, 0).ValidNeighbors(3, 3), 2)
	assert.Len(t, NewCoordinate(1, 0).ValidNeighbors(3, 3), 3)
	assert.Len(t, NewCoordinate(1, 1).ValidNeighbors(3, 3), 4)
	assert.Empty(t, NewCoordinate(0, 0).ValidNeighbors(1, 1))
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(3,5)", NewCoordinate(3, 5).String())
}
