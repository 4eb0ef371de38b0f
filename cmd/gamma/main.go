// Command gamma reads batch commands on stdin and answers them on stdout.
// Logs go to stderr.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/gamma/internal/command"
	"github.com/mitchelldurbincs/gamma/internal/common"
	"github.com/mitchelldurbincs/gamma/internal/config"
	"github.com/mitchelldurbincs/gamma/internal/game/events"
	"github.com/mitchelldurbincs/gamma/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	watch := flag.Bool("watch-config", false, "Reload the log level when the config file changes")
	flag.Parse()

	// Logs must never reach stdout, even before config is loaded
	common.SetupLogging(os.Stderr, "info", "console")

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	common.SetupLogging(os.Stderr, *logLevel, cfg.Log.Format)

	if *watch && config.ConfigFilePath() != "" {
		config.WatchConfig(func(c *config.Config, err error) {
			if err != nil {
				log.Error().Err(err).Msg("Ignoring invalid config change")
				return
			}
			zerolog.SetGlobalLevel(common.ParseLevel(c.Log.Level))
			log.Info().Str("log_level", c.Log.Level).Msg("Config reloaded")
		})
	}

	bus := events.NewEventBus(log.Logger)
	if cfg.Development.LogEvents {
		sub := subscribers.NewLoggerSubscriber("batch_event_logger", log.Logger, zerolog.DebugLevel)
		sub.SetDevMode(true)
		bus.Subscribe(sub)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	out := bufio.NewWriter(os.Stdout)
	session := command.NewSession(command.SessionConfig{
		Output:             out,
		Logger:             log.Logger,
		EventBus:           bus,
		MaxCells:           cfg.Game.MaxCells,
		InteractiveAllowed: cfg.Batch.InteractiveAllowed,
	})

	runErr := session.Run(ctx, os.Stdin)
	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatal().Err(runErr).Msg("Batch session failed")
	}
}
