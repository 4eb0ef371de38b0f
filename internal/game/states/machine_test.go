package states

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gamma/internal/game/events"
)

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhaseUninitialized, "Uninitialized"},
		{PhaseActive, "Active"},
		{PhaseFinished, "Finished"},
		{GamePhase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
			if tt.phase <= PhaseFinished {
				assert.Equal(t, tt.phase, ParsePhase(tt.expected))
			}
		})
	}
	assert.Equal(t, PhaseUninitialized, ParsePhase("bogus"))
}

func TestGamePhase_Properties(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.True(t, PhaseFinished.IsTerminal())
		assert.False(t, PhaseActive.IsTerminal())
		assert.False(t, PhaseUninitialized.IsTerminal())
	})

	t.Run("CanReceiveActions", func(t *testing.T) {
		assert.True(t, PhaseActive.CanReceiveActions())
		assert.False(t, PhaseUninitialized.CanReceiveActions())
		assert.False(t, PhaseFinished.CanReceiveActions())
	})

	t.Run("CanCreateGame", func(t *testing.T) {
		assert.True(t, PhaseUninitialized.CanCreateGame())
		assert.False(t, PhaseActive.CanCreateGame())
		assert.False(t, PhaseFinished.CanCreateGame())
	})
}

func TestGamePhase_Transitions(t *testing.T) {
	allPhases := []GamePhase{PhaseUninitialized, PhaseActive, PhaseFinished}
	tests := []struct {
		from    GamePhase
		allowed []GamePhase
	}{
		{PhaseUninitialized, []GamePhase{PhaseActive}},
		{PhaseActive, []GamePhase{PhaseFinished}},
		{PhaseFinished, []GamePhase{}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.AllowedTransitions())
			for _, target := range allPhases {
				assert.Equal(t, contains(tt.allowed, target), tt.from.CanTransitionTo(target))
			}
		})
	}
}

func contains(phases []GamePhase, target GamePhase) bool {
	for _, p := range phases {
		if p == target {
			return true
		}
	}
	return false
}

func TestGameContext(t *testing.T) {
	ctx := NewGameContext(zerolog.Nop())
	assert.False(t, ctx.HasGame())
	assert.Zero(t, ctx.GetElapsedTime())

	ctx.SetGame("g1", 5, 4, 2, 3)
	assert.True(t, ctx.HasGame())
	assert.Equal(t, "g1", ctx.GameID)
	assert.Equal(t, 5, ctx.Width)
	assert.Equal(t, 4, ctx.Height)
	assert.Equal(t, 2, ctx.Players)
	assert.Equal(t, 3, ctx.MaxAreas)
}

func TestStateMachine(t *testing.T) {
	setup := func() (*StateMachine, *GameContext, *[]events.Event) {
		ctx := NewGameContext(zerolog.Nop())
		bus := events.NewEventBus(zerolog.Nop())
		var published []events.Event
		bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
			published = append(published, e)
		})
		return NewStateMachine(ctx, bus), ctx, &published
	}

	t.Run("NewStateMachine", func(t *testing.T) {
		sm, _, _ := setup()
		assert.Equal(t, PhaseUninitialized, sm.CurrentPhase())
		assert.Len(t, sm.states, 3)
		assert.Empty(t, sm.GetHistory())
	})

	t.Run("Full lifecycle", func(t *testing.T) {
		sm, ctx, published := setup()

		ctx.SetGame("g1", 3, 3, 2, 1)
		require.NoError(t, sm.TransitionTo(PhaseActive, "game created"))
		assert.Equal(t, PhaseActive, sm.CurrentPhase())
		assert.False(t, ctx.StartTime.IsZero())

		ctx.Leaders = []int{1}
		require.NoError(t, sm.TransitionTo(PhaseFinished, "no moves left"))
		assert.Equal(t, PhaseFinished, sm.CurrentPhase())
		assert.False(t, ctx.EndTime.IsZero())
		assert.GreaterOrEqual(t, ctx.GetElapsedTime(), time.Duration(0))

		history := sm.GetHistory()
		require.Len(t, history, 2)
		assert.Equal(t, PhaseUninitialized, history[0].From)
		assert.Equal(t, PhaseActive, history[0].To)
		assert.Equal(t, "game created", history[0].Reason)
		assert.Equal(t, PhaseFinished, history[1].To)

		require.Len(t, *published, 2)
		ev, ok := (*published)[0].(*events.StateTransitionEvent)
		require.True(t, ok)
		assert.Equal(t, "g1", ev.GameID())
		assert.Equal(t, "Uninitialized", ev.From)
		assert.Equal(t, "Active", ev.To)
	})

	t.Run("Invalid transitions", func(t *testing.T) {
		sm, ctx, published := setup()

		err := sm.TransitionTo(PhaseFinished, "skip")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid transition")

		ctx.SetGame("g1", 3, 3, 2, 1)
		require.NoError(t, sm.TransitionTo(PhaseActive, "created"))
		err = sm.TransitionTo(PhaseActive, "again")
		assert.Error(t, err)
		assert.Equal(t, PhaseActive, sm.CurrentPhase())
		assert.Len(t, *published, 1)
	})

	t.Run("Validation blocks activation without a game", func(t *testing.T) {
		sm, _, published := setup()

		err := sm.TransitionTo(PhaseActive, "no game")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a created game")
		assert.Equal(t, PhaseUninitialized, sm.CurrentPhase())
		assert.Empty(t, sm.GetHistory())
		assert.Empty(t, *published)
	})

	t.Run("CanTransitionTo", func(t *testing.T) {
		sm, _, _ := setup()
		assert.True(t, sm.CanTransitionTo(PhaseActive))
		assert.False(t, sm.CanTransitionTo(PhaseFinished))
	})

	t.Run("Nil event bus", func(t *testing.T) {
		ctx := NewGameContext(zerolog.Nop())
		ctx.SetGame("g2", 1, 1, 1, 1)
		sm := NewStateMachine(ctx, nil)
		assert.NoError(t, sm.TransitionTo(PhaseActive, "created"))
		assert.Same(t, ctx, sm.GetContext())
	})
}

// MockState for testing custom state implementations
type MockState struct {
	phase       GamePhase
	enterCalled bool
	exitCalled  bool
	enterError  error
}

func (m *MockState) Phase() GamePhase            { return m.phase }
func (m *MockState) Enter(*GameContext) error    { m.enterCalled = true; return m.enterError }
func (m *MockState) Exit(*GameContext) error     { m.exitCalled = true; return nil }
func (m *MockState) Validate(*GameContext) error { return nil }

func TestStateMachine_CustomStates(t *testing.T) {
	ctx := NewGameContext(zerolog.Nop())
	sm := NewStateMachine(ctx, nil)

	uninit := &MockState{phase: PhaseUninitialized}
	active := &MockState{phase: PhaseActive, enterError: errors.New("boom")}
	sm.RegisterState(uninit)
	sm.RegisterState(active)

	err := sm.TransitionTo(PhaseActive, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enter state Active")
	assert.True(t, uninit.exitCalled)
	assert.True(t, active.enterCalled)
	assert.Equal(t, PhaseUninitialized, sm.CurrentPhase(), "failed enter rolls the phase back")
	assert.Empty(t, sm.GetHistory())

	active.enterError = nil
	require.NoError(t, sm.TransitionTo(PhaseActive, "retry"))
	assert.Len(t, sm.GetHistory(), 1)
}
