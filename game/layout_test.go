package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Run("places walls, markers and actors", func(t *testing.T) {
		state := mustLayout(t, "%%%%\n%P.%\n%.G%\n%%%%")

		require.Equal(t, 4, state.Maze.Width)
		require.Equal(t, 4, state.Maze.Height)
		require.Equal(t, Position{X: 1, Y: 1}, state.PursuerPosition())
		require.Equal(t, Position{X: 2, Y: 2}, state.AdversaryPosition(Adversary))
		require.True(t, state.Maze.IsWall(Position{X: 0, Y: 0}))
		require.False(t, state.Maze.IsWall(Position{X: 1, Y: 2}))
		require.Equal(t, 2, state.Markers().Count())
		require.True(t, state.Markers().At(2, 1))
		require.True(t, state.Markers().At(1, 2))
		require.Equal(t, 0.0, state.Score())
	})

	t.Run("renders back to the same text", func(t *testing.T) {
		text := "%%%%%\n%P. %\n% .G%\n%%%%%"

		require.Equal(t, text, mustLayout(t, text).String())
	})

	t.Run("adversary standing on a marker", func(t *testing.T) {
		state := mustLayout(t, "P...G").MovePursuer(Stop).MoveAdversary(West)

		text := state.String()
		parsed := mustLayout(t, text)

		require.Equal(t, "P..g ", text)
		require.Equal(t, 3, parsed.Markers().Count())
		require.Equal(t, KeyOf(state), KeyOf(parsed))
	})

	t.Run("adversary on the last marker", func(t *testing.T) {
		parsed := mustLayout(t, "P g")

		require.Equal(t, Position{X: 2, Y: 0}, parsed.AdversaryPosition(Adversary))
		require.True(t, parsed.Markers().At(2, 0))
		require.Equal(t, "P g", parsed.String())
	})

	t.Run("ignores surrounding newlines and carriage returns", func(t *testing.T) {
		state := mustLayout(t, "\nP.\r\n G\r\n")

		require.Equal(t, "P.\n G", state.String())
	})

	cases := []struct {
		name   string
		layout string
	}{
		{"empty", ""},
		{"ragged rows", "P.G\n.."},
		{"unknown symbol", "P.G#"},
		{"missing pursuer", "..G"},
		{"two pursuers", "PPG"},
		{"missing adversary", "P.."},
		{"two adversaries", "PGG"},
		{"two adversaries on markers", "Pgg"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseLayout(c.layout)

			require.Error(t, err)
		})
	}
}

func TestLoadLayout(t *testing.T) {
	t.Run("errors name the source", func(t *testing.T) {
		_, err := LoadLayout("broken.lay", "P.G\n..")

		require.ErrorContains(t, err, "broken.lay")
	})

	t.Run("every standard layout parses", func(t *testing.T) {
		for _, name := range StandardLayoutNames() {
			state, err := StandardLayout(name)

			require.NoError(t, err, name)
			require.Greater(t, state.Markers().Count(), 0, name)
		}
	})

	t.Run("unknown standard layout", func(t *testing.T) {
		_, err := StandardLayout("nowhere")

		require.Error(t, err)
	})
}
