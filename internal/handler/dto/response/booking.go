package response

import (
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               string `json:"id"`
	ParkingSpotID    string `json:"parkingSpotId"`
	LicensePlate     string `json:"licensePlate"`
	Duration         int    `json:"duration"`
	Timestamp        int64  `json:"timestamp"`
	ExpiresAt        int64  `json:"expiresAt"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	Expired          bool   `json:"expired"`
}

type CreateBookingResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
	Price   *float64         `json:"price,omitempty"`
}

type ReapResponse struct {
	Removed int `json:"removed"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	out := &BookingResponse{}
	_ = copier.Copy(out, v)
	return out
}

func FromReservationViews(vs []*queries.ReservationView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v))
	}
	return out
}

func FromReserveResult(r *commands.ReserveResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message: "Booking confirmed",
		Booking: FromReservationView(r.Reservation),
		Price:   r.Price,
	}
}
