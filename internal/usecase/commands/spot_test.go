//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotCommandsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("new spot is active with no rates", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		view, err := e.spots.Create(ctx, operator, "10007")
		require.NoError(t, err)
		assert.Equal(t, "10007", view.ID)
		assert.True(t, view.Active)
		assert.Empty(t, view.Rates)
		assert.Equal(t, 1, e.store.Saves())
	})

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		_, err := e.spots.Create(ctx, operator, "10007")
		require.NoError(t, err)

		_, err = e.spots.Create(ctx, operator, "10007")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDuplicateSpotID))
		assert.Equal(t, errs.CategoryConflict, errs.CategoryOf(err))

		all, err := e.spotQ.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("blank id is a validation error", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		_, err := e.spots.Create(ctx, operator, "  ")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidSpotID))
		assert.Equal(t, errs.CategoryValidation, errs.CategoryOf(err))
	})
}

func TestSpotCommandsRequireOperator(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, commands.AllocationPolicy{})
	e.seedSpot(t, "10007", map[string]any{"30": 2.5})
	saves := e.store.Saves()

	calls := map[string]func() error{
		"create": func() error { _, err := e.spots.Create(ctx, visitor, "A"); return err },
		"set active": func() error {
			_, err := e.spots.SetActive(ctx, visitor, "10007", false)
			return err
		},
		"delete": func() error { return e.spots.Delete(ctx, visitor, "10007") },
		"set rates": func() error {
			_, err := e.spots.SetRates(ctx, visitor, "10007", map[string]any{"60": 1.0})
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, errs.Is(err, commands.ErrUnauthorized))
			assert.Equal(t, errs.CategoryUnauthorized, errs.CategoryOf(err))
		})
	}

	assert.Equal(t, saves, e.store.Saves(), "unauthorized calls never reach the store")
	view, err := e.spotQ.Get(ctx, "10007")
	require.NoError(t, err)
	assert.True(t, view.Active)
	assert.Equal(t, map[string]float64{"30": 2.5}, view.Rates)
}

func TestSpotCommandsSetActive(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, commands.AllocationPolicy{})
	e.seedSpot(t, "10007", nil)

	view, err := e.spots.SetActive(ctx, operator, "10007", false)
	require.NoError(t, err)
	assert.False(t, view.Active)

	view, err = e.spots.SetActive(ctx, operator, "10007", true)
	require.NoError(t, err)
	assert.True(t, view.Active)

	_, err = e.spots.SetActive(ctx, operator, "missing", true)
	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrSpotNotFound))
	assert.Equal(t, errs.CategoryNotFound, errs.CategoryOf(err))
}

func TestSpotCommandsSetRates(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the whole table", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		e.seedSpot(t, "10007", map[string]any{"30": 2.5, "60": 4.0})

		view, err := e.spots.SetRates(ctx, operator, "10007", map[string]any{"120": 7.0})
		require.NoError(t, err)
		if diff := cmp.Diff(map[string]float64{"120": 7}, view.Rates); diff != "" {
			t.Errorf("rates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("same input twice stores the same table", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		e.seedSpot(t, "10007", map[string]any{"45": 3.0})
		input := map[string]any{"30": 2.5, "60": 4.0}

		first, err := e.spots.SetRates(ctx, operator, "10007", input)
		require.NoError(t, err)
		second, err := e.spots.SetRates(ctx, operator, "10007", input)
		require.NoError(t, err)

		if diff := cmp.Diff(first.Rates, second.Rates); diff != "" {
			t.Errorf("second apply changed the table (-first +second):\n%s", diff)
		}
		stored, err := e.spotQ.Get(ctx, "10007")
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"30": 2.5, "60": 4}, stored.Rates)
	})

	t.Run("invalid entry leaves rates unchanged", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		e.seedSpot(t, "10007", map[string]any{"30": 2.5})

		_, err := e.spots.SetRates(ctx, operator, "10007", map[string]any{"99": 5.0})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidTier))
		assert.Equal(t, errs.CategoryValidation, errs.CategoryOf(err))
		assert.Contains(t, err.Error(), "99")

		_, err = e.spots.SetRates(ctx, operator, "10007", map[string]any{"30": 3.0, "60": -1.0})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidRate))
		assert.Contains(t, err.Error(), "60")

		_, err = e.spots.SetRates(ctx, operator, "10007", map[string]any{"30": 1e18})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidRate))
		assert.Equal(t, errs.CategoryValidation, errs.CategoryOf(err))

		view, err := e.spotQ.Get(ctx, "10007")
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"30": 2.5}, view.Rates)
	})

	t.Run("unknown spot", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		_, err := e.spots.SetRates(ctx, operator, "missing", map[string]any{"30": 1.0})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrSpotNotFound))
	})
}

func TestSpotCommandsDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while a booking is live", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{RequireRate: true})
		e.seedSpot(t, "10007", map[string]any{"30": 2.5})
		_, err := e.alloc.Reserve(ctx, commands.ReserveParams{SpotID: "10007", LicensePlate: "ABC", DurationMinutes: 30})
		require.NoError(t, err)

		err = e.spots.Delete(ctx, operator, "10007")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrSpotHasActiveReservation))
		assert.Equal(t, errs.CategoryConflict, errs.CategoryOf(err))

		e.clock.Add(30 * time.Minute)
		require.NoError(t, e.spots.Delete(ctx, operator, "10007"), "expired bookings do not block deletion")

		_, err = e.spotQ.Get(ctx, "10007")
		assert.True(t, errs.Is(err, queries.ErrSpotNotFound))
	})

	t.Run("unknown spot", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		err := e.spots.Delete(ctx, operator, "missing")
		require.Error(t, err)
		assert.Equal(t, errs.CategoryNotFound, errs.CategoryOf(err))
	})

	t.Run("storage failure leaves the spot in place", func(t *testing.T) {
		e := newEngine(t, commands.AllocationPolicy{})
		e.seedSpot(t, "10007", nil)
		e.store.SetFailSave(errors.New("disk full"))

		err := e.spots.Delete(ctx, operator, "10007")
		require.Error(t, err)
		assert.Equal(t, errs.CategoryStorage, errs.CategoryOf(err))

		_, err = e.spotQ.Get(ctx, "10007")
		assert.NoError(t, err)
	})
}
