package core

import "fmt"

// ActionType represents the type of action
type ActionType int

const (
	ActionPlace ActionType = iota
	ActionGolden
)

func (t ActionType) String() string {
	switch t {
	case ActionPlace:
		return "place"
	case ActionGolden:
		return "golden move"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action represents a player action aimed at a single cell
type Action interface {
	GetPlayerID() int
	GetType() ActionType
	Target() Coordinate
	Validate(b *Board) error
}

// PlaceAction claims a free cell.
type PlaceAction struct {
	PlayerID int
	X, Y     int
}

func (a *PlaceAction) GetPlayerID() int    { return a.PlayerID }
func (a *PlaceAction) GetType() ActionType { return ActionPlace }
func (a *PlaceAction) Target() Coordinate  { return Coordinate{X: a.X, Y: a.Y} }

// Validate checks the shape of the action against the board; area limits are
// the engine's concern.
func (a *PlaceAction) Validate(b *Board) error {
	if !b.InBounds(a.X, a.Y) {
		return ErrInvalidCoordinates
	}
	if b.Get(a.X, a.Y) != FreeID {
		return ErrFieldTaken
	}
	return nil
}

// GoldenAction captures a cell owned by another player.
type GoldenAction struct {
	PlayerID int
	X, Y     int
}

func (a *GoldenAction) GetPlayerID() int    { return a.PlayerID }
func (a *GoldenAction) GetType() ActionType { return ActionGolden }
func (a *GoldenAction) Target() Coordinate  { return Coordinate{X: a.X, Y: a.Y} }

func (a *GoldenAction) Validate(b *Board) error {
	if !b.InBounds(a.X, a.Y) {
		return ErrInvalidCoordinates
	}
	switch b.Get(a.X, a.Y) {
	case FreeID:
		return ErrFieldFree
	case a.PlayerID:
		return ErrOwnField
	}
	return nil
}
