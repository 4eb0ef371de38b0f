package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gamma/internal/game/core"
)

// Engine is the part of a game the processor drives. *game.Engine satisfies it.
type Engine interface {
	CheckMove(player, x, y int) error
	Move(player, x, y int) bool
	CheckGoldenMove(player, x, y int) error
	GoldenMove(player, x, y int) bool
}

// Result is the outcome of a single action.
type Result struct {
	Action  core.Action
	Applied bool
	// Err explains a refused action, wrapped with the player and target.
	Err error
}

// ActionProcessor applies player actions to an engine in order
type ActionProcessor struct {
	logger zerolog.Logger
}

// NewActionProcessor creates a new action processor
func NewActionProcessor(logger zerolog.Logger) *ActionProcessor {
	return &ActionProcessor{
		logger: logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// Process applies actions one after another in the given order. It stops
// early when ctx is done and returns the results so far with ctx.Err().
// Refused actions do not stop processing; their reason is in Result.Err.
func (ap *ActionProcessor) Process(ctx context.Context, engine Engine, actions []core.Action) ([]Result, error) {
	results := make([]Result, 0, len(actions))

	for _, action := range actions {
		// Check context before processing each action
		select {
		case <-ctx.Done():
			ap.logger.Warn().Err(ctx.Err()).
				Int("processed", len(results)).
				Int("pending", len(actions)-len(results)).
				Msg("Action processing interrupted by context cancellation")
			return results, ctx.Err()
		default:
		}

		result := ap.apply(engine, action)
		if result.Err != nil {
			ap.logger.Debug().Err(result.Err).Msg("Action refused")
		}
		results = append(results, result)
	}
	return results, nil
}

func (ap *ActionProcessor) apply(engine Engine, action core.Action) Result {
	result := Result{Action: action}
	if action == nil {
		result.Err = core.WrapActionError(nil, core.ErrUnknownAction)
		return result
	}

	player := action.GetPlayerID()
	c := action.Target()
	ap.logger.Debug().
		Int("player_id", player).
		Str("action_type", action.GetType().String()).
		Int("x", c.X).
		Int("y", c.Y).
		Msg("Applying action")

	switch act := action.(type) {
	case *core.PlaceAction:
		if engine.Move(act.PlayerID, act.X, act.Y) {
			result.Applied = true
			return result
		}
		result.Err = core.WrapActionError(act, engine.CheckMove(act.PlayerID, act.X, act.Y))
	case *core.GoldenAction:
		// Check first: a failed golden move leaves nothing to ask about afterwards.
		err := engine.CheckGoldenMove(act.PlayerID, act.X, act.Y)
		if err == nil && engine.GoldenMove(act.PlayerID, act.X, act.Y) {
			result.Applied = true
			return result
		}
		if err == nil {
			err = core.ErrGoldenRollback
		}
		result.Err = core.WrapActionError(act, err)
	default:
		ap.logger.Warn().Int("player_id", player).Str("action_type", action.GetType().String()).Msg("Unhandled action type")
		result.Err = core.WrapActionError(action, core.ErrUnknownAction)
	}
	return result
}
