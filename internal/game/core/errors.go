package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions  = errors.New("board dimensions, players and areas must be positive")
	ErrBoardTooLarge      = errors.New("board exceeds the cell index capacity")
	ErrInvalidPlayer      = errors.New("invalid player ID")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrFieldTaken         = errors.New("field is already taken")
	ErrAreaLimit          = errors.New("move would exceed the area limit")
	ErrGoldenMoveUsed     = errors.New("golden move already used")
	ErrFieldFree          = errors.New("field is not taken by anyone")
	ErrOwnField           = errors.New("field already belongs to the player")
	ErrGoldenRollback     = errors.New("golden move rolled back: area limit exceeded")
	ErrNilEngine          = errors.New("game does not exist")
	ErrUnknownAction      = errors.New("unknown action type")
)

// WrapActionError adds the player and target of an action to err.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	if action == nil {
		return fmt.Errorf("player action: %w", err)
	}
	c := action.Target()
	return fmt.Errorf("player %d: %s at %s: %w", action.GetPlayerID(), action.GetType(), c, err)
}
