package game

import "github.com/mitchelldurbincs/gamma/internal/game/core"

// PlayerStats is a snapshot of one player's counters.
type PlayerStats struct {
	UsedGoldenMove bool
	TakenFields    int
	OccupiedAreas  int
	// Free cells touching one of the player's cells.
	AvailableFieldsAdjacent int
	// Free cells touching none of them; claimable only while OccupiedAreas < max.
	AvailableFieldsFar int
}

// playerState holds the live counters. Far fields are not stored: every free
// cell is either adjacent or far for a given player, so far = free - adjacent.
type playerState struct {
	usedGoldenMove bool
	takenFields    int
	occupiedAreas  int
	adjacentFree   int
}

// GameState is a copy of the whole game, detached from the engine.
type GameState struct {
	GameID    string
	Width     int
	Height    int
	Players   int
	MaxAreas  int
	FreeCells int
	Board     *core.Board
}
