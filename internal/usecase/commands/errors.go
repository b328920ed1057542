package commands

import (
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/shared"
)

var (
	ErrUnauthorized             = errs.New("operator session required")
	ErrInvalidRequest           = errs.New("invalid booking request")
	ErrInvalidSpotID            = errs.New("invalid parking spot id")
	ErrInvalidTier              = errs.New("invalid duration")
	ErrInvalidRate              = errs.New("invalid rate")
	ErrSpotNotFound             = errs.New("parking spot not found")
	ErrSpotInactive             = errs.New("parking spot is not active")
	ErrNoRateDefined            = errs.New("no rate defined for this duration")
	ErrSpotAlreadyReserved      = errs.New("parking spot is already booked")
	ErrDuplicateSpotID          = errs.New("parking spot already exists")
	ErrSpotHasActiveReservation = errs.New("parking spot has an active booking")
)

// mark applies marks innermost first, so the last one is the category.
func mark(err error, marks ...error) error {
	for _, m := range marks {
		err = errs.Mark(err, m)
	}
	return err
}

func requireOperator(actor shared.Actor) error {
	if !actor.IsOperator {
		return errs.Mark(ErrUnauthorized, errs.ErrUnauthorized)
	}
	return nil
}
