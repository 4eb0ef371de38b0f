package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID identifies the game once it exists
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Board parameters, filled in when the game is created
	Width    int
	Height   int
	Players  int
	MaxAreas int

	// StartTime is when PhaseActive was entered
	StartTime time.Time

	// EndTime is when PhaseFinished was entered
	EndTime time.Time

	// Turns counts accepted moves and golden moves
	Turns int

	// Leaders holds the players with the most fields once finished
	Leaders []int
}

// NewGameContext creates a context for a session that has no game yet
func NewGameContext(logger zerolog.Logger) *GameContext {
	return &GameContext{
		Logger: logger.With().Str("component", "session").Logger(),
	}
}

// SetGame records the parameters of a newly created game
func (gc *GameContext) SetGame(gameID string, width, height, players, maxAreas int) {
	gc.GameID = gameID
	gc.Width = width
	gc.Height = height
	gc.Players = players
	gc.MaxAreas = maxAreas
	gc.Logger = gc.Logger.With().Str("game_id", gameID).Logger()
}

// HasGame returns true once a game's parameters are recorded
func (gc *GameContext) HasGame() bool {
	return gc.GameID != "" && gc.Width > 0 && gc.Height > 0 && gc.Players > 0 && gc.MaxAreas > 0
}

// GetElapsedTime returns the time the game has been active, or its total
// length once finished
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
