package core

import "fmt"

// Coordinate represents a position on the game board
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y

	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Neighbors returns the four orthogonal neighbors of this coordinate,
// in Up, Right, Down, Left order. Some may be off the board.
func (c Coordinate) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, len(Directions))
	for _, d := range Directions {
		neighbors = append(neighbors, c.Move(d))
	}
	return neighbors
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(width, height int) []Coordinate {
	valid := make([]Coordinate, 0, 4)
	for _, n := range c.Neighbors() {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents one of the four neighbor directions
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the neighbor directions in iteration order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Offset returns the signed coordinate delta for the direction.
// Up is y-1 and Down is y+1.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(d Direction) Coordinate {
	dx, dy := d.Offset()
	return c.Add(Coordinate{X: dx, Y: dy})
}
