package states

import "fmt"

// GamePhase represents the current phase of a session
type GamePhase int

const (
	// PhaseUninitialized - No board exists yet; only game creation is accepted
	PhaseUninitialized GamePhase = iota

	// PhaseActive - A board exists and accepts moves
	PhaseActive

	// PhaseFinished - No player can place a marker or use a golden move
	PhaseFinished
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseActive:
		return "Active"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished
}

// CanReceiveActions returns true if moves and queries reach the engine in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseActive
}

// CanCreateGame returns true if a new board may be created in this phase
func (p GamePhase) CanCreateGame() bool {
	return p == PhaseUninitialized
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseUninitialized:
		return []GamePhase{PhaseActive}
	case PhaseActive:
		return []GamePhase{PhaseFinished}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) GamePhase {
	switch s {
	case "Active":
		return PhaseActive
	case "Finished":
		return PhaseFinished
	default:
		return PhaseUninitialized
	}
}
