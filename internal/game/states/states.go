package states

import (
	"errors"
	"time"
)

// UninitializedState waits for a game to be created
type UninitializedState struct{}

func NewUninitializedState() State {
	return &UninitializedState{}
}

func (s *UninitializedState) Phase() GamePhase {
	return PhaseUninitialized
}

func (s *UninitializedState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Uninitialized state")
	return nil
}

func (s *UninitializedState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Uninitialized state")
	return nil
}

func (s *UninitializedState) Validate(ctx *GameContext) error {
	return nil
}

// ActiveState is a game in progress
type ActiveState struct{}

func NewActiveState() State {
	return &ActiveState{}
}

func (s *ActiveState) Phase() GamePhase {
	return PhaseActive
}

func (s *ActiveState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Int("width", ctx.Width).
		Int("height", ctx.Height).
		Int("players", ctx.Players).
		Int("max_areas", ctx.MaxAreas).
		Msg("Game active")
	return nil
}

func (s *ActiveState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Int("turns", ctx.Turns).Msg("Leaving Active state")
	return nil
}

func (s *ActiveState) Validate(ctx *GameContext) error {
	if !ctx.HasGame() {
		return errors.New("active state requires a created game")
	}
	return nil
}

// FinishedState is a game where nobody can act any more
type FinishedState struct{}

func NewFinishedState() State {
	return &FinishedState{}
}

func (s *FinishedState) Phase() GamePhase {
	return PhaseFinished
}

func (s *FinishedState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("turns", ctx.Turns).
		Ints("leaders", ctx.Leaders).
		Dur("duration", ctx.GetElapsedTime()).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return errors.New("finished state requires a started game")
	}
	return nil
}
