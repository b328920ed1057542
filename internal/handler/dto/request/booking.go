package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("duration must be a whole number of minutes")

// Duration accepts both 30 and "30", as the booking forms send strings.
type CreateBookingRequest struct {
	ParkingSpotID string      `json:"parkingSpotId" binding:"required"`
	LicensePlate  string      `json:"licensePlate" binding:"required"`
	Duration      json.Number `json:"duration" binding:"required"`
}

func (r CreateBookingRequest) DurationMinutes() (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(r.Duration.String()))
	if err != nil {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}
