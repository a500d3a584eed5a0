package agent

import (
	"errors"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, layout string) *game.MazeState {
	t.Helper()
	state, err := game.ParseLayout(layout)
	require.NoError(t, err)
	return state
}

// stubAgent answers every request with the same move.
type stubAgent struct {
	action  game.Action
	utility float64
	err     error
	calls   int
	last    game.State
}

func (a *stubAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	a.calls++
	a.last = state
	return a.action, metrics.SearchMetric{Utility: a.utility}, a.err
}

func TestMinimaxAgent(t *testing.T) {
	t.Run("commits every decision", func(t *testing.T) {
		history := searcher.NewHistory(0)
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2)), history)
		state := mustLayout(t, "P.G")

		action, metric, err := a.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, game.East, action)
		require.Equal(t, 1, history.Len())
		u, ok := history.Utility(game.KeyOf(state))
		require.True(t, ok)
		require.Equal(t, metric.Utility, u)
		require.Equal(t, 509.0, u)
	})

	t.Run("history grows by one per decision", func(t *testing.T) {
		history := searcher.NewHistory(0)
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(3)), history)
		layouts := []string{"P. . G", " P. .G", "  P. G"}

		for turn, layout := range layouts {
			_, _, err := a.FindMove(mustLayout(t, layout))

			require.NoError(t, err)
			require.Equal(t, turn+1, history.Len())
		}
	})

	t.Run("deciding the same state twice recommits it", func(t *testing.T) {
		history := searcher.NewHistory(0)
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2)), history)

		_, _, err := a.FindMove(mustLayout(t, "P. . G"))
		require.NoError(t, err)
		_, _, err = a.FindMove(mustLayout(t, "P. . G"))
		require.NoError(t, err)

		require.Equal(t, 1, history.Len())
	})

	t.Run("no move to choose", func(t *testing.T) {
		history := searcher.NewHistory(0)
		a := NewMinimaxAgent(searcher.NewMinimax(), history)
		won := mustLayout(t, "P.G").MovePursuer(game.East)

		_, _, err := a.FindMove(won)

		require.Error(t, err)
		require.True(t, errors.Is(err, searcher.ErrNoMoves))
		require.Equal(t, 0, history.Len(), "Failed decisions should not be committed")
	})

	t.Run("nil history", func(t *testing.T) {
		a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2)), nil)

		_, _, err := a.FindMove(mustLayout(t, "P.G"))

		require.NoError(t, err)
	})
}
