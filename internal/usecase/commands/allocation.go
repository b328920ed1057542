package commands

//go:generate mockgen -source=allocation.go -destination=../../../tests/mock/commands/allocation.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"gpark/internal/domain/reservation"
	"gpark/internal/domain/spot"
	"gpark/internal/pkg/clock"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/queries"
	"gpark/internal/usecase/shared"
)

type ReserveParams struct {
	SpotID          string
	LicensePlate    string
	DurationMinutes int
}

type ReserveResult struct {
	Reservation *queries.ReservationView
	// Price is nil when the spot has no rate for the tier and the policy allows that.
	Price *float64
}

type AllocationCommands interface {
	Reserve(ctx context.Context, params ReserveParams) (*ReserveResult, error)
	// ReserveAsOperator is the operator console path; same rules as Reserve.
	ReserveAsOperator(ctx context.Context, actor shared.Actor, params ReserveParams) (*ReserveResult, error)
	// Reap removes every reservation expired at the current instant.
	Reap(ctx context.Context) (int, error)
	ReapAsOperator(ctx context.Context, actor shared.Actor) (int, error)
}

type AllocationPolicy struct {
	RequireRate bool
}

type allocationCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy AllocationPolicy
}

func NewAllocationCommands(uow shared.UnitOfWork, clk clock.Clock, policy AllocationPolicy) AllocationCommands {
	return &allocationCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

func (a *allocationCommandsImpl) Reserve(ctx context.Context, params ReserveParams) (*ReserveResult, error) {
	tier, err := spot.TierFromMinutes(params.DurationMinutes)
	if err != nil {
		return nil, mark(err, ErrInvalidTier, ErrInvalidRequest, errs.ErrValidation)
	}

	var result *ReserveResult
	err = a.uow.Within(ctx, func(ctx context.Context, st *shared.State) error {
		now := a.clock.Now()

		res, err := reservation.NewReservation(params.SpotID, params.LicensePlate, tier, now)
		if err != nil {
			return mark(err, ErrInvalidRequest, errs.ErrValidation)
		}

		target, ok := st.Spots.Get(res.SpotID())
		if !ok {
			return mark(ErrSpotNotFound, errs.ErrNotFound)
		}
		if !target.IsActive() {
			return mark(ErrSpotInactive, errs.ErrConflict)
		}

		var price *float64
		if p, quoted := target.Quote(tier); quoted {
			v := p.Float64()
			price = &v
		} else if a.policy.RequireRate {
			return mark(ErrNoRateDefined, errs.ErrValidation)
		}

		if err := st.Ledger.Insert(res); err != nil {
			if errors.Is(err, reservation.ErrConflict) {
				return mark(ErrSpotAlreadyReserved, errs.ErrConflict)
			}
			return err
		}

		result = &ReserveResult{
			Reservation: queries.NewReservationView(res, now),
			Price:       price,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking spot booked",
		"reservation_id", result.Reservation.ID,
		"spot_id", result.Reservation.ParkingSpotID,
		"duration", result.Reservation.Duration)
	return result, nil
}

func (a *allocationCommandsImpl) ReserveAsOperator(ctx context.Context, actor shared.Actor, params ReserveParams) (*ReserveResult, error) {
	if err := requireOperator(actor); err != nil {
		return nil, err
	}
	return a.Reserve(ctx, params)
}

func (a *allocationCommandsImpl) Reap(ctx context.Context) (int, error) {
	now := a.clock.Now()

	// Skip the write path entirely when there is nothing to remove.
	expired := 0
	err := a.uow.WithinReadOnly(ctx, func(ctx context.Context, st *shared.State) error {
		expired = st.Ledger.Len() - len(st.Ledger.ListActive(now))
		return nil
	})
	if err != nil || expired == 0 {
		return 0, err
	}

	removed := 0
	err = a.uow.Within(ctx, func(ctx context.Context, st *shared.State) error {
		removed = st.Ledger.Reap(now)
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("expired bookings reaped", "removed", removed)
	return removed, nil
}

func (a *allocationCommandsImpl) ReapAsOperator(ctx context.Context, actor shared.Actor) (int, error) {
	if err := requireOperator(actor); err != nil {
		return 0, err
	}
	return a.Reap(ctx)
}
