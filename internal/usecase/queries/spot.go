package queries

//go:generate mockgen -source=spot.go -destination=../../../tests/mock/queries/spot.go -package=queriesmock

import (
	"context"

	"gpark/internal/domain/spot"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/shared"
)

var (
	ErrSpotNotFound  = errs.New("parking spot not found")
	ErrInvalidTier   = errs.New("invalid duration")
	ErrNoRateDefined = errs.New("no rate defined for this duration")
)

type SpotQueries interface {
	List(ctx context.Context) ([]*SpotView, error)
	Get(ctx context.Context, id string) (*SpotView, error)
	Quote(ctx context.Context, id string, minutes int) (*QuoteView, error)
}

type spotQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSpotQueries(uow shared.UnitOfWork) SpotQueries {
	return &spotQueriesImpl{uow: uow}
}

func (q *spotQueriesImpl) List(ctx context.Context) ([]*SpotView, error) {
	var views []*SpotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		spots := st.Spots.List()
		views = make([]*SpotView, 0, len(spots))
		for _, s := range spots {
			views = append(views, NewSpotView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *spotQueriesImpl) Get(ctx context.Context, id string) (*SpotView, error) {
	var view *SpotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		s, ok := st.Spots.Get(id)
		if !ok {
			return errs.Mark(ErrSpotNotFound, errs.ErrNotFound)
		}
		view = NewSpotView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *spotQueriesImpl) Quote(ctx context.Context, id string, minutes int) (*QuoteView, error) {
	tier, err := spot.TierFromMinutes(minutes)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidTier), errs.ErrValidation)
	}

	var view *QuoteView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		s, ok := st.Spots.Get(id)
		if !ok {
			return errs.Mark(ErrSpotNotFound, errs.ErrNotFound)
		}
		price, ok := s.Quote(tier)
		if !ok {
			return errs.Mark(ErrNoRateDefined, errs.ErrValidation)
		}
		view = &QuoteView{
			SpotID:   s.ID(),
			Duration: tier.Minutes(),
			Price:    price.Float64(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
