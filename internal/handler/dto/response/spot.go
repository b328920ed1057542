package response

import (
	"gpark/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID     string             `json:"id"`
	Active bool               `json:"active"`
	Rates  map[string]float64 `json:"rates"`
}

type QuoteResponse struct {
	ParkingSpotID string  `json:"parkingSpotId"`
	Duration      int     `json:"duration"`
	Price         float64 `json:"price"`
}

func FromSpotView(v *queries.SpotView) *SpotResponse {
	out := &SpotResponse{}
	_ = copier.CopyWithOption(out, v, copier.Option{DeepCopy: true})
	if out.Rates == nil {
		out.Rates = map[string]float64{}
	}
	return out
}

func FromSpotViews(vs []*queries.SpotView) []*SpotResponse {
	out := make([]*SpotResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromSpotView(v))
	}
	return out
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		ParkingSpotID: v.SpotID,
		Duration:      v.Duration,
		Price:         v.Price,
	}
}
