//go:build unit

package spot_test

import (
	"testing"

	"gpark/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(spots []*spot.Spot) []string {
	out := make([]string, 0, len(spots))
	for _, s := range spots {
		out = append(out, s.ID())
	}
	return out
}

func TestRegistry(t *testing.T) {
	t.Run("create keeps insertion order", func(t *testing.T) {
		r := spot.NewRegistry()
		for _, id := range []string{"B", "A", "C"} {
			_, err := r.Create(id)
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"B", "A", "C"}, ids(r.List()))
		assert.Equal(t, 3, r.Len())
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		r := spot.NewRegistry()
		_, err := r.Create("10007")
		require.NoError(t, err)

		_, err = r.Create(" 10007 ")
		assert.ErrorIs(t, err, spot.ErrDuplicateID)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		r := spot.NewRegistry()
		_, err := r.SetActive("nope", false)
		assert.ErrorIs(t, err, spot.ErrNotFound)
		_, err = r.SetRates("nope", spot.Rates{})
		assert.ErrorIs(t, err, spot.ErrNotFound)
		assert.ErrorIs(t, r.Delete("nope"), spot.ErrNotFound)
		_, ok := r.Get("nope")
		assert.False(t, ok)
	})

	t.Run("delete removes from order", func(t *testing.T) {
		r := spot.NewRegistry()
		for _, id := range []string{"1", "2", "3"} {
			_, err := r.Create(id)
			require.NoError(t, err)
		}
		require.NoError(t, r.Delete("2"))
		assert.Equal(t, []string{"1", "3"}, ids(r.List()))

		// the id can be reused afterwards
		_, err := r.Create("2")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "3", "2"}, ids(r.List()))
	})

	t.Run("clone is isolated", func(t *testing.T) {
		r := spot.NewRegistry()
		_, err := r.Create("A")
		require.NoError(t, err)

		c := r.Clone()
		_, err = c.SetActive("A", false)
		require.NoError(t, err)
		_, err = c.Create("B")
		require.NoError(t, err)

		orig, _ := r.Get("A")
		assert.True(t, orig.IsActive())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("restore rejects duplicates", func(t *testing.T) {
		r := spot.NewRegistry()
		require.NoError(t, r.Restore(spot.ReconstructSpot("A", false, nil)))
		assert.ErrorIs(t, r.Restore(spot.ReconstructSpot("A", true, nil)), spot.ErrDuplicateID)

		got, ok := r.Get("A")
		require.True(t, ok)
		assert.False(t, got.IsActive())
	})
}
