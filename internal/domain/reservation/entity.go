package reservation

import (
	"errors"
	"strings"
	"time"

	"gpark/internal/domain/spot"

	"github.com/google/uuid"
)

var (
	ErrEmptyLicensePlate   = errors.New("license plate cannot be empty")
	ErrLicensePlateTooLong = errors.New("license plate is too long (max 32 characters)")
	ErrEmptySpotID         = errors.New("spot id cannot be empty")
)

const (
	MaxLicensePlateLength = 32
)

// Reservation is a time-bounded claim on one spot by one vehicle. It only
// references the spot by id.
type Reservation struct {
	id           uuid.UUID
	spotID       string
	licensePlate string
	tier         spot.DurationTier
	createdAt    time.Time
}

func NewReservation(spotID, licensePlate string, tier spot.DurationTier, createdAt time.Time) (*Reservation, error) {
	spotID = strings.TrimSpace(spotID)
	if spotID == "" {
		return nil, ErrEmptySpotID
	}

	plate, err := normalizeLicensePlate(licensePlate)
	if err != nil {
		return nil, err
	}

	if !tier.IsValid() {
		return nil, &spot.TierError{Tier: tier.String()}
	}

	return &Reservation{
		id:           uuid.New(),
		spotID:       spotID,
		licensePlate: plate,
		tier:         tier,
		createdAt:    createdAt,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	spotID, licensePlate string,
	tier spot.DurationTier,
	createdAt time.Time,
) *Reservation {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Reservation{
		id:           id,
		spotID:       spotID,
		licensePlate: licensePlate,
		tier:         tier,
		createdAt:    createdAt,
	}
}

func normalizeLicensePlate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyLicensePlate
	}
	if len(s) > MaxLicensePlateLength {
		return "", ErrLicensePlateTooLong
	}
	return s, nil
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) SpotID() string                  { return r.spotID }
func (r *Reservation) LicensePlate() string            { return r.licensePlate }
func (r *Reservation) DurationTier() spot.DurationTier { return r.tier }
func (r *Reservation) CreatedAt() time.Time            { return r.createdAt }
