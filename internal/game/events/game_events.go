package events

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypeMovePlaced       = "move.placed"
	TypeMoveRejected     = "move.rejected"
	TypeGoldenCommitted  = "golden.committed"
	TypeGoldenRolledBack = "golden.rolled_back"
	TypeStateTransition  = "state.transition"
)

// GameStartedEvent is published when a new game is created
type GameStartedEvent struct {
	BaseEvent
	Width    int `json:"width"`
	Height   int `json:"height"`
	Players  int `json:"players"`
	MaxAreas int `json:"max_areas"`
}

func NewGameStartedEvent(gameID string, width, height, players, maxAreas int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBaseEvent(TypeGameStarted, gameID),
		Width:     width,
		Height:    height,
		Players:   players,
		MaxAreas:  maxAreas,
	}
}

// MovePlacedEvent is published after a successful placement
type MovePlacedEvent struct {
	BaseEvent
	PlayerID      int `json:"player_id"`
	X             int `json:"x"`
	Y             int `json:"y"`
	MergedAreas   int `json:"merged_areas"`
	OccupiedAreas int `json:"occupied_areas"`
}

func NewMovePlacedEvent(gameID string, playerID, x, y, merged, occupied int) *MovePlacedEvent {
	return &MovePlacedEvent{
		BaseEvent:     newBaseEvent(TypeMovePlaced, gameID),
		PlayerID:      playerID,
		X:             x,
		Y:             y,
		MergedAreas:   merged,
		OccupiedAreas: occupied,
	}
}

// MoveRejectedEvent is published when a move or golden move fails validation
type MoveRejectedEvent struct {
	BaseEvent
	PlayerID int    `json:"player_id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Golden   bool   `json:"golden"`
	Reason   string `json:"reason"`
}

func NewMoveRejectedEvent(gameID string, playerID, x, y int, golden bool, reason error) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBaseEvent(TypeMoveRejected, gameID),
		PlayerID:  playerID,
		X:         x,
		Y:         y,
		Golden:    golden,
		Reason:    reason.Error(),
	}
}

// GoldenCommittedEvent is published when a capture sticks
type GoldenCommittedEvent struct {
	BaseEvent
	PlayerID    int `json:"player_id"`
	VictimID    int `json:"victim_id"`
	X           int `json:"x"`
	Y           int `json:"y"`
	VictimAreas int `json:"victim_areas"`
}

func NewGoldenCommittedEvent(gameID string, playerID, victimID, x, y, victimAreas int) *GoldenCommittedEvent {
	return &GoldenCommittedEvent{
		BaseEvent:   newBaseEvent(TypeGoldenCommitted, gameID),
		PlayerID:    playerID,
		VictimID:    victimID,
		X:           x,
		Y:           y,
		VictimAreas: victimAreas,
	}
}

// GoldenRolledBackEvent is published when a simulated capture had to be undone
type GoldenRolledBackEvent struct {
	BaseEvent
	PlayerID int    `json:"player_id"`
	VictimID int    `json:"victim_id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Reason   string `json:"reason"`
}

func NewGoldenRolledBackEvent(gameID string, playerID, victimID, x, y int, reason error) *GoldenRolledBackEvent {
	return &GoldenRolledBackEvent{
		BaseEvent: newBaseEvent(TypeGoldenRolledBack, gameID),
		PlayerID:  playerID,
		VictimID:  victimID,
		X:         x,
		Y:         y,
		Reason:    reason.Error(),
	}
}

// StateTransitionEvent is published when a session changes phase
type StateTransitionEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

func NewStateTransitionEvent(gameID, from, to, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBaseEvent(TypeStateTransition, gameID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}
