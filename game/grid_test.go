package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	t.Run("copies are independent", func(t *testing.T) {
		g := gridWith(3, 2, Position{X: 1, Y: 1})
		c := g.Copy()

		c.Set(1, 1, false)
		c.Set(0, 0, true)

		require.True(t, g.At(1, 1), "Source grid should keep its marker")
		require.False(t, g.At(0, 0), "Source grid should not gain a marker")
	})

	t.Run("out of bounds cells hold nothing", func(t *testing.T) {
		g := NewGrid(2, 2)
		g.Set(5, 5, true)

		require.False(t, g.At(5, 5))
		require.False(t, g.At(-1, 0))
		require.Equal(t, 0, g.Count())
	})

	t.Run("positions follow scan order", func(t *testing.T) {
		g := gridWith(3, 3, Position{X: 2, Y: 0}, Position{X: 0, Y: 2}, Position{X: 0, Y: 1})

		want := []Position{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 2, Y: 0}}
		if diff := cmp.Diff(want, g.Positions()); diff != "" {
			t.Errorf("Positions() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fingerprints compare contents", func(t *testing.T) {
		a := gridWith(4, 3, Position{X: 1, Y: 2}, Position{X: 3, Y: 0})
		b := gridWith(4, 3, Position{X: 3, Y: 0}, Position{X: 1, Y: 2})
		c := gridWith(4, 3, Position{X: 1, Y: 2})

		require.Equal(t, a.Fingerprint(), b.Fingerprint(), "Same markers should give the same fingerprint")
		require.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "Different markers should give different fingerprints")
	})

	t.Run("fingerprints include dimensions", func(t *testing.T) {
		require.NotEqual(t, NewGrid(2, 3).Fingerprint(), NewGrid(3, 2).Fingerprint())
		// Same cell count, dimensions equal modulo 2^16
		require.NotEqual(t, NewGrid(65537, 1).Fingerprint(), NewGrid(1, 65537).Fingerprint())
	})
}

func TestKeyOf(t *testing.T) {
	t.Run("same triple reached by different paths", func(t *testing.T) {
		start := mustLayout(t, "%%%%%\n%P .%\n%  G%\n%%%%%")

		viaEastWest := start.MovePursuer(East).MovePursuer(West)
		viaStop := start.MovePursuer(Stop).MovePursuer(Stop)

		require.Equal(t, KeyOf(viaEastWest), KeyOf(viaStop), "Keys should ignore the path and the score")
		require.NotEqual(t, viaEastWest.Score(), start.Score())
	})

	t.Run("eaten marker changes the key", func(t *testing.T) {
		start := mustLayout(t, "%%%%%\n%P. %\n%  G%\n%%%%%")

		ate := start.MovePursuer(East).MovePursuer(West)

		require.Equal(t, start.Pursuer, ate.Pursuer)
		require.NotEqual(t, KeyOf(start), KeyOf(ate))
	})

	t.Run("keys work as map keys", func(t *testing.T) {
		state := mustLayout(t, "P.G")
		seen := map[Key]bool{KeyOf(state): true}

		require.True(t, seen[KeyOf(state.MovePursuer(Stop))])
	})
}
