package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/gamma/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging of the raw event JSON
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("width", e.Width).
			Int("height", e.Height).
			Int("players", e.Players).
			Int("max_areas", e.MaxAreas)

	case *events.MovePlacedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.X).
			Int("y", e.Y).
			Int("merged_areas", e.MergedAreas).
			Int("occupied_areas", e.OccupiedAreas)

	case *events.MoveRejectedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.X).
			Int("y", e.Y).
			Bool("golden", e.Golden).
			Str("reason", e.Reason)

	case *events.GoldenCommittedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("victim_id", e.VictimID).
			Int("x", e.X).
			Int("y", e.Y).
			Int("victim_areas", e.VictimAreas)

	case *events.GoldenRolledBackEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("victim_id", e.VictimID).
			Int("x", e.X).
			Int("y", e.Y).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
