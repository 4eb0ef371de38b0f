package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gamma/internal/game/core"
	"github.com/mitchelldurbincs/gamma/internal/game/events"
)

// GameConfig describes a game to create.
type GameConfig struct {
	Width    int
	Height   int
	Players  int
	MaxAreas int

	// MaxCells caps Width*Height; 0 means core.MaxCells.
	MaxCells int
	// GameID tags logs and events; generated when empty.
	GameID   string
	Logger   zerolog.Logger
	EventBus events.Publisher
}

// Engine owns the state of one game. It is not safe for concurrent use.
// A nil *Engine behaves as a game that does not exist: operations fail and
// queries return zero values.
type Engine struct {
	gameID   string
	width    int
	height   int
	players  int
	maxAreas int

	board *core.Board
	areas *core.AreaTracker

	// Stats are created on first touch; a missing entry means default counters.
	stats           map[int]*playerState
	freeCells       int
	occupiedPlayers int // players owning at least one cell
	bracketBytes    int // extra board text used by owner IDs >= 10

	logger   zerolog.Logger
	eventBus events.Publisher
}

// NewEngine validates cfg and creates an empty game.
func NewEngine(cfg GameConfig) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Players <= 0 || cfg.MaxAreas <= 0 {
		return nil, core.ErrInvalidDimensions
	}
	if uint64(cfg.Players) > core.MaxDimension || uint64(cfg.MaxAreas) > core.MaxDimension {
		return nil, core.ErrInvalidDimensions
	}
	maxCells := cfg.MaxCells
	if maxCells <= 0 || maxCells > core.MaxCells {
		maxCells = core.MaxCells
	}
	if uint64(cfg.Width) > core.MaxDimension || uint64(cfg.Height) > core.MaxDimension ||
		uint64(cfg.Width)*uint64(cfg.Height) > uint64(maxCells) {
		return nil, fmt.Errorf("%dx%d board: %w", cfg.Width, cfg.Height, core.ErrBoardTooLarge)
	}

	if cfg.GameID == "" {
		cfg.GameID = uuid.New().String()
	}

	board := core.NewBoard(cfg.Width, cfg.Height)
	e := &Engine{
		gameID:    cfg.GameID,
		width:     cfg.Width,
		height:    cfg.Height,
		players:   cfg.Players,
		maxAreas:  cfg.MaxAreas,
		board:     board,
		areas:     core.NewAreaTracker(board),
		stats:     make(map[int]*playerState),
		freeCells: board.Cells(),
		logger:    cfg.Logger.With().Str("component", "GameEngine").Str("game_id", cfg.GameID).Logger(),
		eventBus:  cfg.EventBus,
	}

	e.logger.Info().
		Int("width", e.width).
		Int("height", e.height).
		Int("players", e.players).
		Int("max_areas", e.maxAreas).
		Msg("Game created")
	e.publish(events.NewGameStartedEvent(e.gameID, e.width, e.height, e.players, e.maxAreas))

	return e, nil
}

// Public accessors
func (e *Engine) GameID() string { return e.gameID }
func (e *Engine) Width() int     { return e.width }
func (e *Engine) Height() int    { return e.height }
func (e *Engine) Players() int   { return e.players }
func (e *Engine) MaxAreas() int  { return e.maxAreas }

// State returns a detached copy of the game.
func (e *Engine) State() GameState {
	return GameState{
		GameID:    e.gameID,
		Width:     e.width,
		Height:    e.height,
		Players:   e.players,
		MaxAreas:  e.maxAreas,
		FreeCells: e.freeCells,
		Board:     e.board.Clone(),
	}
}

// Owner returns who holds (x, y); ok is false off the board.
func (e *Engine) Owner(x, y int) (owner int, ok bool) {
	if e == nil || !e.board.InBounds(x, y) {
		return core.FreeID, false
	}
	return e.board.Get(x, y), true
}

// Stats returns a snapshot of a player's counters.
func (e *Engine) Stats(player int) (PlayerStats, bool) {
	if e == nil || !e.validPlayer(player) {
		return PlayerStats{}, false
	}
	st := e.peekStats(player)
	return PlayerStats{
		UsedGoldenMove:          st.usedGoldenMove,
		TakenFields:             st.takenFields,
		OccupiedAreas:           st.occupiedAreas,
		AvailableFieldsAdjacent: st.adjacentFree,
		AvailableFieldsFar:      e.freeCells - st.adjacentFree,
	}, true
}

// CheckMove reports why Move(player, x, y) would fail, or nil.
func (e *Engine) CheckMove(player, x, y int) error {
	if e == nil {
		return core.ErrNilEngine
	}
	if !e.validPlayer(player) {
		return core.ErrInvalidPlayer
	}
	if !e.board.InBounds(x, y) {
		return core.ErrInvalidCoordinates
	}
	return e.checkPlacement(player, e.board.Idx(x, y))
}

// Move places player's marker on a free cell.
func (e *Engine) Move(player, x, y int) bool {
	if err := e.CheckMove(player, x, y); err != nil {
		e.reject(player, x, y, false, err)
		return false
	}

	merged := e.place(player, e.board.Idx(x, y))
	areas := e.stats[player].occupiedAreas
	e.logger.Debug().
		Int("player_id", player).
		Int("x", x).
		Int("y", y).
		Int("merged_areas", merged).
		Int("occupied_areas", areas).
		Msg("Move placed")
	e.publish(events.NewMovePlacedEvent(e.gameID, player, x, y, merged, areas))
	return true
}

// CheckGoldenMove reports why GoldenMove(player, x, y) would be refused
// before the capture is simulated, or nil. A nil result does not guarantee
// success: the area limit is only known after the capture.
func (e *Engine) CheckGoldenMove(player, x, y int) error {
	if e == nil {
		return core.ErrNilEngine
	}
	if !e.validPlayer(player) {
		return core.ErrInvalidPlayer
	}
	if e.peekStats(player).usedGoldenMove {
		return core.ErrGoldenMoveUsed
	}
	if !e.board.InBounds(x, y) {
		return core.ErrInvalidCoordinates
	}
	switch e.board.Get(x, y) {
	case core.FreeID:
		return core.ErrFieldFree
	case player:
		return core.ErrOwnField
	}
	return nil
}

// GoldenMove replaces another player's marker at (x, y) with player's.
// The capture is applied, checked against the area limit of every player and
// undone when it breaks it. On failure the observable state is unchanged.
func (e *Engine) GoldenMove(player, x, y int) bool {
	if err := e.CheckGoldenMove(player, x, y); err != nil {
		e.reject(player, x, y, true, err)
		return false
	}

	idx := e.board.Idx(x, y)
	st := e.statsFor(player)
	st.usedGoldenMove = true

	victim := e.remove(idx)

	if err := e.checkPlacement(player, idx); err != nil {
		e.place(victim, idx)
		st.usedGoldenMove = false
		e.rollback(player, victim, x, y, err)
		return false
	}
	e.place(player, idx)

	// Only the mover and the victim changed, so they are the only ones that can overflow.
	if e.stats[victim].occupiedAreas > e.maxAreas || st.occupiedAreas > e.maxAreas {
		e.remove(idx)
		e.place(victim, idx)
		st.usedGoldenMove = false
		e.rollback(player, victim, x, y, core.ErrGoldenRollback)
		return false
	}

	victimAreas := e.stats[victim].occupiedAreas
	e.logger.Debug().
		Int("player_id", player).
		Int("victim_id", victim).
		Int("x", x).
		Int("y", y).
		Int("victim_areas", victimAreas).
		Msg("Golden move committed")
	e.publish(events.NewGoldenCommittedEvent(e.gameID, player, victim, x, y, victimAreas))
	return true
}

// BusyFields returns how many cells player owns.
func (e *Engine) BusyFields(player int) int {
	if e == nil || !e.validPlayer(player) {
		return 0
	}
	return e.peekStats(player).takenFields
}

// FreeFields returns how many cells player could claim with Move right now.
func (e *Engine) FreeFields(player int) int {
	if e == nil || !e.validPlayer(player) {
		return 0
	}
	st := e.peekStats(player)
	free := st.adjacentFree
	if st.occupiedAreas < e.maxAreas {
		free += e.freeCells - st.adjacentFree
	}
	return free
}

// GoldenPossible reports whether player still has a golden move and some
// other player owns a cell to capture.
func (e *Engine) GoldenPossible(player int) bool {
	if e == nil || !e.validPlayer(player) {
		return false
	}
	st := e.peekStats(player)
	if st.usedGoldenMove {
		return false
	}
	others := e.occupiedPlayers
	if st.takenFields > 0 {
		others--
	}
	return others > 0
}

// NextPlayer returns the first player after current, in cyclic order and
// ending with current itself, who can still move or use a golden move.
// Pass 0 to start from player 1.
func (e *Engine) NextPlayer(current int) (int, bool) {
	if e == nil || current < 0 || current > e.players {
		return 0, false
	}
	for i := 1; i <= e.players; i++ {
		p := (current+i-1)%e.players + 1
		if e.FreeFields(p) > 0 || e.GoldenPossible(p) {
			return p, true
		}
	}
	return 0, false
}

func (e *Engine) validPlayer(player int) bool {
	return player >= 1 && player <= e.players
}

func (e *Engine) reject(player, x, y int, golden bool, err error) {
	if e == nil {
		return
	}
	e.logger.Debug().
		Err(err).
		Int("player_id", player).
		Int("x", x).
		Int("y", y).
		Bool("golden", golden).
		Msg("Move rejected")
	e.publish(events.NewMoveRejectedEvent(e.gameID, player, x, y, golden, err))
}

func (e *Engine) rollback(player, victim, x, y int, err error) {
	e.logger.Debug().
		Err(err).
		Int("player_id", player).
		Int("victim_id", victim).
		Int("x", x).
		Int("y", y).
		Msg("Golden move rolled back")
	e.publish(events.NewGoldenRolledBackEvent(e.gameID, player, victim, x, y, err))
}

func (e *Engine) publish(event events.Event) {
	if e.eventBus != nil {
		e.eventBus.Publish(event)
	}
}
