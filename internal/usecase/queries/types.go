package queries

import (
	"time"

	"gpark/internal/domain/reservation"
	"gpark/internal/domain/spot"
)

// Read models (DTO for read side)
type SpotView struct {
	ID     string             `json:"id"`
	Active bool               `json:"active"`
	Rates  map[string]float64 `json:"rates"`
}

type ReservationView struct {
	ID               string `json:"id"`
	ParkingSpotID    string `json:"parkingSpotId"`
	LicensePlate     string `json:"licensePlate"`
	Duration         int    `json:"duration"`
	Timestamp        int64  `json:"timestamp"`
	ExpiresAt        int64  `json:"expiresAt"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	Expired          bool   `json:"expired"`
}

type QuoteView struct {
	SpotID   string  `json:"parkingSpotId"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

func NewSpotView(s *spot.Spot) *SpotView {
	return &SpotView{
		ID:     s.ID(),
		Active: s.IsActive(),
		Rates:  s.Rates().ToWire(),
	}
}

// NewReservationView evaluates expiry against now; the same reservation yields
// different views at different instants.
func NewReservationView(r *reservation.Reservation, now time.Time) *ReservationView {
	return &ReservationView{
		ID:               r.ID().String(),
		ParkingSpotID:    r.SpotID(),
		LicensePlate:     r.LicensePlate(),
		Duration:         r.DurationTier().Minutes(),
		Timestamp:        r.CreatedAt().UnixMilli(),
		ExpiresAt:        r.ExpiresAt().UnixMilli(),
		RemainingSeconds: int64(reservation.Remaining(r, now) / time.Second),
		Expired:          r.IsExpired(now),
	}
}
