package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gamma/internal/game"
	"github.com/mitchelldurbincs/gamma/internal/game/events"
	"github.com/mitchelldurbincs/gamma/internal/game/states"
)

// SessionConfig configures a batch session
type SessionConfig struct {
	Output io.Writer
	Logger zerolog.Logger
	// EventBus receives engine and phase events; may be nil.
	EventBus events.Publisher
	// MaxCells caps the board size of created games; 0 means no extra cap.
	MaxCells int
	// InteractiveAllowed only changes how an I command is logged: no
	// interactive front end exists, so it is always answered with ERROR.
	InteractiveAllowed bool
}

// Session holds at most one game and answers batch commands about it.
type Session struct {
	out     io.Writer
	logger  zerolog.Logger
	bus     events.Publisher
	cfg     SessionConfig
	machine *states.StateMachine
	gctx    *states.GameContext
	engine  *game.Engine
}

// NewSession creates a session with no game
func NewSession(cfg SessionConfig) *Session {
	gctx := states.NewGameContext(cfg.Logger)
	return &Session{
		out:     cfg.Output,
		logger:  cfg.Logger.With().Str("component", "BatchSession").Logger(),
		bus:     cfg.EventBus,
		cfg:     cfg,
		machine: states.NewStateMachine(gctx, cfg.EventBus),
		gctx:    gctx,
	}
}

// Phase returns the session's current phase
func (s *Session) Phase() states.GamePhase {
	return s.machine.CurrentPhase()
}

// Engine returns the session's game, or nil before one is created
func (s *Session) Engine() *game.Engine {
	return s.engine
}

// Run executes every line of r until EOF or until ctx is done.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	reader := NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading line %d: %w", reader.line+1, err)
		}
		if err := s.Execute(line); err != nil {
			return err
		}
	}
}

// Execute answers one line. The returned error is only for failed writes;
// command failures are reported on the output.
func (s *Session) Execute(line Line) error {
	if line.Skip {
		return nil
	}
	if line.Err != nil {
		s.logger.Debug().Err(line.Err).Int("line", line.Number).Msg("Malformed line")
		return s.errorLine(line.Number)
	}

	cmd := line.Command
	if cmd.Type == CmdNewBatch || cmd.Type == CmdNewInteractive {
		return s.newGame(line.Number, cmd)
	}
	if !s.machine.CurrentPhase().CanReceiveActions() {
		s.logger.Debug().Int("line", line.Number).Str("command", cmd.Type.String()).Msg("No game yet")
		return s.errorLine(line.Number)
	}

	e := s.engine
	a := toInts(cmd.Args)
	var err error
	switch cmd.Type {
	case CmdMove:
		ok := e.Move(a[0], a[1], a[2])
		if ok {
			s.gctx.Turns++
		}
		err = s.printBool(ok)
	case CmdGoldenMove:
		ok := e.GoldenMove(a[0], a[1], a[2])
		if ok {
			s.gctx.Turns++
		}
		err = s.printBool(ok)
	case CmdBusyFields:
		_, err = fmt.Fprintf(s.out, "%d\n", e.BusyFields(a[0]))
	case CmdFreeFields:
		_, err = fmt.Fprintf(s.out, "%d\n", e.FreeFields(a[0]))
	case CmdGoldenPossible:
		err = s.printBool(e.GoldenPossible(a[0]))
	case CmdBoard:
		_, err = io.WriteString(s.out, e.Board())
	}
	return err
}

func (s *Session) newGame(number int, cmd Command) error {
	if !s.machine.CurrentPhase().CanCreateGame() {
		s.logger.Debug().Int("line", number).Msg("Game already exists")
		return s.errorLine(number)
	}
	if cmd.Type == CmdNewInteractive {
		if s.cfg.InteractiveAllowed {
			s.logger.Warn().Int("line", number).Msg("Interactive mode requested but no interactive front end is available")
		} else {
			s.logger.Debug().Int("line", number).Msg("Interactive mode disabled")
		}
		return s.errorLine(number)
	}

	a := toInts(cmd.Args)
	e, err := game.NewEngine(game.GameConfig{
		Width:    a[0],
		Height:   a[1],
		Players:  a[2],
		MaxAreas: a[3],
		MaxCells: s.cfg.MaxCells,
		Logger:   s.cfg.Logger,
		EventBus: s.bus,
	})
	if err != nil {
		s.logger.Debug().Err(err).Int("line", number).Msg("Game creation failed")
		return s.errorLine(number)
	}

	s.gctx.SetGame(e.GameID(), e.Width(), e.Height(), e.Players(), e.MaxAreas())
	if err := s.machine.TransitionTo(states.PhaseActive, fmt.Sprintf("created on line %d", number)); err != nil {
		s.logger.Error().Err(err).Int("line", number).Msg("Could not activate game")
		return s.errorLine(number)
	}
	s.engine = e

	_, err = fmt.Fprintf(s.out, "OK %d\n", number)
	return err
}

func (s *Session) errorLine(number int) error {
	_, err := fmt.Fprintf(s.out, "ERROR %d\n", number)
	return err
}

func (s *Session) printBool(v bool) error {
	n := 0
	if v {
		n = 1
	}
	_, err := fmt.Fprintf(s.out, "%d\n", n)
	return err
}

func toInts(args []uint32) []int {
	out := make([]int, len(args))
	for i, v := range args {
		out[i] = int(v)
	}
	return out
}
