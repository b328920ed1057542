//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gpark/internal/pkg/clock"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/queries"
	"gpark/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationQueries(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(t0.Add(10 * time.Minute))
	q := queries.NewAllocationQueries(newUoW(t, fixture()), clk)
	operator := shared.OperatorActor("operator")

	t.Run("available excludes inactive and occupied spots", func(t *testing.T) {
		views, err := q.ListAvailable(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "10009", views[0].ID, "an expired booking does not hold its spot")
	})

	t.Run("active bookings carry remaining time", func(t *testing.T) {
		views, err := q.ListActive(ctx, operator)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "ABC-123", views[0].LicensePlate)
		assert.Equal(t, int64(20*60), views[0].RemainingSeconds)
		assert.Equal(t, t0.Add(30*time.Minute).UnixMilli(), views[0].ExpiresAt)
	})

	t.Run("all bookings include unreaped expired ones", func(t *testing.T) {
		views, err := q.ListAll(ctx, operator)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.True(t, views[0].Expired)
		assert.Equal(t, int64(0), views[0].RemainingSeconds)
		assert.False(t, views[1].Expired)
	})

	t.Run("views follow the clock", func(t *testing.T) {
		clk.Set(t0.Add(30 * time.Minute))
		defer clk.Set(t0.Add(10 * time.Minute))

		views, err := q.ListActive(ctx, operator)
		require.NoError(t, err)
		assert.Empty(t, views)

		available, err := q.ListAvailable(ctx)
		require.NoError(t, err)
		assert.Len(t, available, 2)
	})

	t.Run("booking lists are operator only", func(t *testing.T) {
		_, err := q.ListActive(ctx, shared.AnonymousActor())
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrUnauthorized))
		assert.Equal(t, errs.CategoryUnauthorized, errs.CategoryOf(err))

		_, err = q.ListAll(ctx, shared.AnonymousActor())
		assert.Equal(t, errs.CategoryUnauthorized, errs.CategoryOf(err))
	})
}
