//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gpark/internal/infra/store/memstore"
	"gpark/internal/infra/uow"
	"gpark/internal/pkg/clock"
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"
	"gpark/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var (
	t0       = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	operator = shared.OperatorActor("operator")
	visitor  = shared.AnonymousActor()
)

type engine struct {
	store *memstore.Store
	clock *clock.MockClock
	uow   *uow.StateUoW
	spots commands.SpotCommands
	alloc commands.AllocationCommands
	spotQ queries.SpotQueries
	bookQ queries.AllocationQueries
}

func newEngine(t *testing.T, policy commands.AllocationPolicy) *engine {
	t.Helper()

	store := memstore.New(nil)
	u, err := uow.NewStateUoW(context.Background(), store, uow.WithRetry(0, time.Millisecond))
	require.NoError(t, err)

	clk := clock.NewMockClock(t0)
	return &engine{
		store: store,
		clock: clk,
		uow:   u,
		spots: commands.NewSpotCommands(u, clk),
		alloc: commands.NewAllocationCommands(u, clk, policy),
		spotQ: queries.NewSpotQueries(u),
		bookQ: queries.NewAllocationQueries(u, clk),
	}
}

// seedSpot creates an active spot with the given rates.
func (e *engine) seedSpot(t *testing.T, id string, rates map[string]any) {
	t.Helper()
	ctx := context.Background()
	_, err := e.spots.Create(ctx, operator, id)
	require.NoError(t, err)
	if rates != nil {
		_, err = e.spots.SetRates(ctx, operator, id, rates)
		require.NoError(t, err)
	}
}
