// Command game plays a random game and prints the board and standings.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/gamma/internal/common"
	"github.com/mitchelldurbincs/gamma/internal/config"
	"github.com/mitchelldurbincs/gamma/internal/game"
	"github.com/mitchelldurbincs/gamma/internal/game/events"
	"github.com/mitchelldurbincs/gamma/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/gamma/internal/game/playout"
	"github.com/mitchelldurbincs/gamma/internal/game/states"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 to use config, then time)")
	flag.Parse()

	common.SetupLogging(os.Stderr, "info", "console")
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()
	common.SetupLogging(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	// Create a seeded RNG for reproducible games during development
	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Demo.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", seed)
	rng := rand.New(rand.NewSource(seed))

	bus := events.NewEventBus(log.Logger)
	if cfg.Development.LogEvents {
		sub := subscribers.NewLoggerSubscriber("demo_event_logger", log.Logger, zerolog.InfoLevel)
		sub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGoldenCommitted, events.TypeStateTransition})
		bus.Subscribe(sub)
	}

	engine, err := game.NewEngine(game.GameConfig{
		Width:    cfg.Demo.Width,
		Height:   cfg.Demo.Height,
		Players:  cfg.Demo.Players,
		MaxAreas: cfg.Demo.Areas,
		MaxCells: cfg.Game.MaxCells,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	gctx := states.NewGameContext(log.Logger)
	gctx.SetGame(engine.GameID(), engine.Width(), engine.Height(), engine.Players(), engine.MaxAreas())
	machine := states.NewStateMachine(gctx, bus)
	if err := machine.TransitionTo(states.PhaseActive, "demo started"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start game")
	}

	generator := playout.NewGenerator(playout.PlayoutConfig{
		MaxTurns:    cfg.Demo.MaxTurns,
		GoldenRatio: cfg.Demo.GoldenRatio,
	}, rng, log.Logger)

	summary, err := generator.Play(context.Background(), engine)
	if err != nil {
		log.Fatal().Err(err).Msg("Playout failed")
	}

	gctx.Turns = summary.Placements + summary.GoldenMoves
	gctx.Leaders = summary.Leaders
	if summary.Finished {
		if err := machine.TransitionTo(states.PhaseFinished, "no player can move"); err != nil {
			log.Error().Err(err).Msg("Failed to finish game")
		}
	}

	fmt.Printf("\nFinal board (%s):\n%s\n", machine.CurrentPhase(), engine.Board())
	fmt.Printf("Turns: %d (placements %d, golden moves %d, passes %d)\n",
		summary.Turns, summary.Placements, summary.GoldenMoves, summary.Passes)
	for _, s := range summary.Standings {
		st, _ := engine.Stats(s.PlayerID)
		fmt.Printf("Player %d: %d fields in %d areas, golden move used: %v\n",
			s.PlayerID, s.Fields, s.Areas, st.UsedGoldenMove)
	}

	switch len(summary.Leaders) {
	case 0:
		fmt.Println("No fields taken.")
	case 1:
		fmt.Printf("Player %d leads.\n", summary.Leaders[0])
	default:
		fmt.Printf("Tie between players %v.\n", summary.Leaders)
	}
	if !summary.Finished {
		fmt.Printf("Game reached maximum turns (%d)\n", summary.Turns)
	}
}
