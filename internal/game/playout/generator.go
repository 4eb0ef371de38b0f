// Package playout plays random games on an engine, for demos and soak tests.
package playout

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gamma/internal/game"
	"github.com/mitchelldurbincs/gamma/internal/game/core"
	"github.com/mitchelldurbincs/gamma/internal/game/processor"
	"github.com/mitchelldurbincs/gamma/internal/game/rules"
)

// PlayoutConfig holds configuration for random playouts
type PlayoutConfig struct {
	// MaxTurns caps the number of turns; 0 means twice the cell count plus
	// the player count.
	MaxTurns int
	// GoldenRatio is the chance a player tries a golden move when one is possible.
	GoldenRatio float64
}

// DefaultPlayoutConfig returns a sensible default configuration
func DefaultPlayoutConfig() PlayoutConfig {
	return PlayoutConfig{
		MaxTurns:    0,
		GoldenRatio: 0.1,
	}
}

// Summary describes a finished playout
type Summary struct {
	Turns       int
	Placements  int
	GoldenMoves int
	Passes      int
	Rejected    int
	// Finished is true when the game ended because nobody could act.
	Finished  bool
	Standings []rules.Standing
	Leaders   []int
}

// Generator plays random games with a deterministic RNG
type Generator struct {
	config    PlayoutConfig
	rng       *rand.Rand
	processor *processor.ActionProcessor
	logger    zerolog.Logger
}

// NewGenerator creates a new playout generator
func NewGenerator(config PlayoutConfig, rng *rand.Rand, logger zerolog.Logger) *Generator {
	return &Generator{
		config:    config,
		rng:       rng,
		processor: processor.NewActionProcessor(logger),
		logger:    logger.With().Str("component", "Playout").Logger(),
	}
}

// Play runs turns on engine until nobody can act, the turn cap is reached or
// ctx is done. Turns rotate with Engine.NextPlayer starting from player 1.
func (g *Generator) Play(ctx context.Context, engine *game.Engine) (Summary, error) {
	var summary Summary

	maxTurns := g.config.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 2*engine.Width()*engine.Height() + engine.Players()
	}

	current, passes := 0, 0
	for summary.Turns < maxTurns {
		next, ok := engine.NextPlayer(current)
		if !ok {
			summary.Finished = true
			break
		}
		current = next
		summary.Turns++

		board := engine.State().Board
		action := g.chooseAction(engine, board, current)
		if action == nil {
			// Only golden moves that would roll back are left for this player
			summary.Passes++
			passes++
			if passes >= engine.Players() {
				summary.Finished = true
				break
			}
			continue
		}
		passes = 0
		if err := action.Validate(board); err != nil {
			return summary, fmt.Errorf("turn %d: %w", summary.Turns, core.WrapActionError(action, err))
		}

		results, err := g.processor.Process(ctx, engine, []core.Action{action})
		if err != nil {
			return summary, err
		}
		switch r := results[0]; {
		case !r.Applied:
			summary.Rejected++
			g.logger.Warn().Err(r.Err).Int("turn", summary.Turns).Msg("Chosen action was refused")
		case action.GetType() == core.ActionGolden:
			summary.GoldenMoves++
		default:
			summary.Placements++
		}
	}

	summary.Standings = rules.Standings(engine.State().Board, engine.Players())
	summary.Leaders = rules.Leaders(summary.Standings)

	g.logger.Info().
		Int("turns", summary.Turns).
		Int("placements", summary.Placements).
		Int("golden_moves", summary.GoldenMoves).
		Int("passes", summary.Passes).
		Bool("finished", summary.Finished).
		Ints("leaders", summary.Leaders).
		Msg("Playout complete")
	return summary, nil
}

// chooseAction picks a random legal action for player, or nil when the player
// has nothing that would succeed.
func (g *Generator) chooseAction(engine *game.Engine, board *core.Board, player int) core.Action {
	canPlace := engine.FreeFields(player) > 0
	tryGolden := engine.GoldenPossible(player) && (!canPlace || g.rng.Float64() < g.config.GoldenRatio)

	if tryGolden {
		targets := rules.GoldenTargets(board, player)
		for _, i := range g.rng.Perm(len(targets)) {
			c := targets[i]
			if rules.GoldenMoveKeepsLimit(board, player, engine.MaxAreas(), c.X, c.Y) {
				return &core.GoldenAction{PlayerID: player, X: c.X, Y: c.Y}
			}
		}
	}
	if !canPlace {
		return nil
	}

	mask := rules.LegalPlacementMask(board, player, engine.MaxAreas())
	pick := g.rng.Intn(engine.FreeFields(player))
	for idx, legal := range mask {
		if !legal {
			continue
		}
		if pick == 0 {
			x, y := board.XY(idx)
			return &core.PlaceAction{PlayerID: player, X: x, Y: y}
		}
		pick--
	}
	return nil
}
