package queries

//go:generate mockgen -source=allocation.go -destination=../../../tests/mock/queries/allocation.go -package=queriesmock

import (
	"context"

	"gpark/internal/pkg/clock"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/shared"
)

var (
	ErrUnauthorized = errs.New("operator session required")
)

type AllocationQueries interface {
	// ListAvailable returns active spots without a live reservation, in registry order.
	ListAvailable(ctx context.Context) ([]*SpotView, error)
	ListActive(ctx context.Context, actor shared.Actor) ([]*ReservationView, error)
	ListAll(ctx context.Context, actor shared.Actor) ([]*ReservationView, error)
}

type allocationQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAllocationQueries(uow shared.UnitOfWork, clk clock.Clock) AllocationQueries {
	return &allocationQueriesImpl{
		uow:   uow,
		clock: clk,
	}
}

func (q *allocationQueriesImpl) ListAvailable(ctx context.Context) ([]*SpotView, error) {
	now := q.clock.Now()

	var views []*SpotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		views = make([]*SpotView, 0, st.Spots.Len())
		for _, s := range st.Spots.List() {
			if !s.IsActive() || !st.Ledger.IsFree(s.ID(), now) {
				continue
			}
			views = append(views, NewSpotView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *allocationQueriesImpl) ListActive(ctx context.Context, actor shared.Actor) ([]*ReservationView, error) {
	if !actor.IsOperator {
		return nil, errs.Mark(ErrUnauthorized, errs.ErrUnauthorized)
	}
	now := q.clock.Now()

	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		active := st.Ledger.ListActive(now)
		views = make([]*ReservationView, 0, len(active))
		for _, r := range active {
			views = append(views, NewReservationView(r, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *allocationQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*ReservationView, error) {
	if !actor.IsOperator {
		return nil, errs.Mark(ErrUnauthorized, errs.ErrUnauthorized)
	}
	now := q.clock.Now()

	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		all := st.Ledger.ListAll()
		views = make([]*ReservationView, 0, len(all))
		for _, r := range all {
			views = append(views, NewReservationView(r, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
