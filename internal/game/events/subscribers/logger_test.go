package subscribers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gamma/internal/game/events"
	"github.com/mitchelldurbincs/gamma/internal/game/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLoggerSubscriber(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("test-logger", zerolog.Nop(), zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("game-1", 20, 10, 4, 3),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(20), logLine["width"])
				assert.Equal(t, float64(10), logLine["height"])
				assert.Equal(t, float64(4), logLine["players"])
				assert.Equal(t, float64(3), logLine["max_areas"])
			},
		},
		{
			name:  "MovePlacedEvent",
			event: events.NewMovePlacedEvent("game-1", 2, 3, 4, 1, 2),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["player_id"])
				assert.Equal(t, float64(3), logLine["x"])
				assert.Equal(t, float64(4), logLine["y"])
				assert.Equal(t, float64(1), logLine["merged_areas"])
			},
		},
		{
			name:  "GoldenRolledBackEvent",
			event: events.NewGoldenRolledBackEvent("game-1", 1, 3, 0, 0, errors.New("too many areas")),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["victim_id"])
				assert.Equal(t, "too many areas", logLine["reason"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("game-1", "Uninitialized", "Active", "created"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Uninitialized", logLine["from"])
				assert.Equal(t, "Active", logLine["to"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tc.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Game event", lines[0]["message"])
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, tc.event.Type(), lines[0]["event_type"])
			assert.Equal(t, "game-1", lines[0]["game_id"])
			tc.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.Nop(), zerolog.InfoLevel)

	logSub.SetEventFilter([]string{events.TypeGoldenCommitted})
	assert.True(t, logSub.InterestedIn(events.TypeGoldenCommitted))
	assert.False(t, logSub.InterestedIn(events.TypeMovePlaced))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeMovePlaced))
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)

	debugSub := subscribers.NewLoggerSubscriber("debug", logger, zerolog.DebugLevel)
	debugSub.HandleEvent(events.NewMovePlacedEvent("g", 1, 0, 0, 0, 1))
	assert.Empty(t, buf.String(), "debug events are dropped by a warn logger")

	warnSub := subscribers.NewLoggerSubscriber("warn", logger, zerolog.WarnLevel)
	warnSub.HandleEvent(events.NewMovePlacedEvent("g", 1, 0, 0, 0, 1))
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewGoldenCommittedEvent("g", 1, 2, 5, 6, 2))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be embedded JSON")
	assert.Equal(t, float64(5), data["x"])
	assert.Equal(t, "golden.committed", data["type"])
}
