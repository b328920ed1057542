package commands

//go:generate mockgen -source=spot.go -destination=../../../tests/mock/commands/spot.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"gpark/internal/domain/spot"
	"gpark/internal/pkg/clock"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/queries"
	"gpark/internal/usecase/shared"
)

// SpotCommands are the operator-only mutations of the spot registry. Each one
// refuses an anonymous actor before touching state.
type SpotCommands interface {
	Create(ctx context.Context, actor shared.Actor, id string) (*queries.SpotView, error)
	SetActive(ctx context.Context, actor shared.Actor, id string, active bool) (*queries.SpotView, error)
	Delete(ctx context.Context, actor shared.Actor, id string) error
	// SetRates replaces the whole rate map. Nothing changes unless every entry is valid.
	SetRates(ctx context.Context, actor shared.Actor, id string, input map[string]any) (*queries.SpotView, error)
}

type spotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSpotCommands(uow shared.UnitOfWork, clk clock.Clock) SpotCommands {
	return &spotCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (s *spotCommandsImpl) Create(ctx context.Context, actor shared.Actor, id string) (*queries.SpotView, error) {
	if err := requireOperator(actor); err != nil {
		return nil, err
	}

	var view *queries.SpotView
	err := s.uow.Within(ctx, func(ctx context.Context, st *shared.State) error {
		created, err := st.Spots.Create(id)
		if err != nil {
			return mapSpotError(err)
		}
		view = queries.NewSpotView(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking spot created", "spot_id", view.ID, "actor", actor.Subject)
	return view, nil
}

func (s *spotCommandsImpl) SetActive(ctx context.Context, actor shared.Actor, id string, active bool) (*queries.SpotView, error) {
	if err := requireOperator(actor); err != nil {
		return nil, err
	}

	var view *queries.SpotView
	err := s.uow.Within(ctx, func(ctx context.Context, st *shared.State) error {
		updated, err := st.Spots.SetActive(id, active)
		if err != nil {
			return mapSpotError(err)
		}
		view = queries.NewSpotView(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking spot updated", "spot_id", id, "active", active, "actor", actor.Subject)
	return view, nil
}

func (s *spotCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id string) error {
	if err := requireOperator(actor); err != nil {
		return err
	}

	err := s.uow.Within(ctx, func(ctx context.Context, st *shared.State) error {
		if _, ok := st.Spots.Get(id); !ok {
			return mark(ErrSpotNotFound, errs.ErrNotFound)
		}
		if st.Ledger.HasLive(id, s.clock.Now()) {
			return mark(ErrSpotHasActiveReservation, errs.ErrConflict)
		}
		return mapSpotError(st.Spots.Delete(id))
	})
	if err != nil {
		return err
	}

	slog.Info("parking spot deleted", "spot_id", id, "actor", actor.Subject)
	return nil
}

func (s *spotCommandsImpl) SetRates(ctx context.Context, actor shared.Actor, id string, input map[string]any) (*queries.SpotView, error) {
	if err := requireOperator(actor); err != nil {
		return nil, err
	}

	rates, err := spot.ParseRates(input)
	if err != nil {
		return nil, mapSpotError(err)
	}

	var view *queries.SpotView
	err = s.uow.Within(ctx, func(ctx context.Context, st *shared.State) error {
		updated, err := st.Spots.SetRates(id, rates)
		if err != nil {
			return mapSpotError(err)
		}
		view = queries.NewSpotView(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking spot rates replaced", "spot_id", id, "tiers", len(rates), "actor", actor.Subject)
	return view, nil
}

func mapSpotError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, spot.ErrNotFound):
		return mark(ErrSpotNotFound, errs.ErrNotFound)
	case errors.Is(err, spot.ErrDuplicateID):
		return mark(ErrDuplicateSpotID, errs.ErrConflict)
	case errors.Is(err, spot.ErrEmptyID), errors.Is(err, spot.ErrIDTooLong):
		return mark(err, ErrInvalidSpotID, errs.ErrValidation)
	case errors.Is(err, spot.ErrInvalidTier):
		return mark(err, ErrInvalidTier, errs.ErrValidation)
	case errors.Is(err, spot.ErrInvalidRate):
		return mark(err, ErrInvalidRate, errs.ErrValidation)
	default:
		return err
	}
}
