//go:build unit || e2e

package builder

import (
	"time"

	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	id        uuid.UUID
	spotID    string
	plate     string
	duration  int
	createdAt time.Time
	now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		id:        uuid.New(),
		spotID:    "10007",
		plate:     "ABC-123",
		duration:  30,
		createdAt: t0,
		now:       t0,
	}
}

func (b *BookingBuilder) WithSpotID(id string) *BookingBuilder {
	b.spotID = id
	return b
}

func (b *BookingBuilder) WithPlate(plate string) *BookingBuilder {
	b.plate = plate
	return b
}

func (b *BookingBuilder) WithDuration(minutes int) *BookingBuilder {
	b.duration = minutes
	return b
}

// At sets the instant the view is evaluated at.
func (b *BookingBuilder) At(now time.Time) *BookingBuilder {
	b.now = now
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"parkingSpotId": b.spotID,
		"licensePlate":  b.plate,
		"duration":      b.duration,
	}
}

func (b *BookingBuilder) BuildParams() commands.ReserveParams {
	return commands.ReserveParams{
		SpotID:          b.spotID,
		LicensePlate:    b.plate,
		DurationMinutes: b.duration,
	}
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	expiresAt := b.createdAt.Add(time.Duration(b.duration) * time.Minute)
	remaining := expiresAt.Sub(b.now)
	if remaining < 0 {
		remaining = 0
	}
	return &queries.ReservationView{
		ID:               b.id.String(),
		ParkingSpotID:    b.spotID,
		LicensePlate:     b.plate,
		Duration:         b.duration,
		Timestamp:        b.createdAt.UnixMilli(),
		ExpiresAt:        expiresAt.UnixMilli(),
		RemainingSeconds: int64(remaining / time.Second),
		Expired:          !b.now.Before(expiresAt),
	}
}

func (b *BookingBuilder) BuildResult(price *float64) *commands.ReserveResult {
	return &commands.ReserveResult{
		Reservation: b.BuildView(),
		Price:       price,
	}
}

