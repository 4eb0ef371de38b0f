package playout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gamma/internal/game"
	"github.com/mitchelldurbincs/gamma/internal/game/rules"
	"github.com/mitchelldurbincs/gamma/internal/testutil"
)

func newEngine(t *testing.T, w, h, players, areas int) *game.Engine {
	t.Helper()
	e, err := game.NewEngine(game.GameConfig{
		Width: w, Height: h, Players: players, MaxAreas: areas,
		Logger: testutil.NopLogger(),
	})
	require.NoError(t, err)
	return e
}

func TestDefaultPlayoutConfig(t *testing.T) {
	config := DefaultPlayoutConfig()
	assert.Equal(t, 0, config.MaxTurns)
	assert.InDelta(t, 0.1, config.GoldenRatio, 1e-9)
}

func TestNewGenerator(t *testing.T) {
	config := DefaultPlayoutConfig()
	rng := testutil.NewTestRNG(12345)
	generator := NewGenerator(config, rng, testutil.NopLogger())

	require.NotNil(t, generator)
	assert.Equal(t, config, generator.config)
	assert.Same(t, rng, generator.rng)
}

func TestPlay_FillsBoardWithoutGoldenMoves(t *testing.T) {
	e := newEngine(t, 6, 5, 3, 30)
	g := NewGenerator(PlayoutConfig{GoldenRatio: 0}, testutil.NewTestRNG(1), testutil.NopLogger())

	summary, err := g.Play(context.Background(), e)
	require.NoError(t, err)

	// With no area limit in reach every cell gets placed, then each player
	// spends its golden move on the full board.
	assert.True(t, summary.Finished)
	assert.Equal(t, 30, summary.Placements)
	assert.Equal(t, 0, summary.Rejected)
	total := 0
	for p := 1; p <= 3; p++ {
		total += e.BusyFields(p)
		assert.False(t, e.GoldenPossible(p))
	}
	assert.Equal(t, 30, total)
	assert.Equal(t, summary.Placements+summary.GoldenMoves+summary.Passes, summary.Turns)
}

func TestPlay_RespectsAreaLimit(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		e := newEngine(t, 8, 8, 4, 2)
		g := NewGenerator(PlayoutConfig{MaxTurns: 10000, GoldenRatio: 0.3}, testutil.NewTestRNG(seed), testutil.NopLogger())

		summary, err := g.Play(context.Background(), e)
		require.NoError(t, err)
		assert.True(t, summary.Finished, "seed %d", seed)
		assert.Equal(t, 0, summary.Rejected, "seed %d", seed)

		b := e.State().Board
		for p := 1; p <= 4; p++ {
			assert.LessOrEqual(t, rules.CountAreas(b, p), 2, "seed %d player %d", seed, p)
			assert.Equal(t, 0, e.FreeFields(p), "seed %d player %d", seed, p)
		}
		require.Len(t, summary.Standings, 4)
		assert.NotEmpty(t, summary.Leaders)
	}
}

func TestPlay_IsDeterministic(t *testing.T) {
	run := func() string {
		e := newEngine(t, 7, 7, 3, 3)
		g := NewGenerator(PlayoutConfig{GoldenRatio: 0.2}, testutil.NewTestRNG(42), testutil.NopLogger())
		_, err := g.Play(context.Background(), e)
		require.NoError(t, err)
		return e.Board()
	}
	assert.Equal(t, run(), run())
}

func TestPlay_MaxTurns(t *testing.T) {
	e := newEngine(t, 10, 10, 2, 5)
	g := NewGenerator(PlayoutConfig{MaxTurns: 7}, testutil.NewTestRNG(3), testutil.NopLogger())

	summary, err := g.Play(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Turns)
	assert.False(t, summary.Finished)
	assert.Equal(t, 7, e.BusyFields(1)+e.BusyFields(2))
	assert.Equal(t, 7, summary.Placements)
}

func TestPlay_ContextCancelled(t *testing.T) {
	e := newEngine(t, 4, 4, 2, 2)
	g := NewGenerator(DefaultPlayoutConfig(), testutil.NewTestRNG(1), testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Play(ctx, e)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, e.BusyFields(1))
}
