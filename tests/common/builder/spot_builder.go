//go:build unit || e2e

package builder

import (
	reqdto "gpark/internal/handler/dto/request"
	"gpark/internal/usecase/queries"
)

type SpotBuilder struct {
	id     string
	active bool
	rates  map[string]float64
}

func NewSpotBuilder() *SpotBuilder {
	return &SpotBuilder{
		id:     "10007",
		active: true,
		rates:  map[string]float64{"30": 2.5},
	}
}

func (b *SpotBuilder) WithID(id string) *SpotBuilder {
	b.id = id
	return b
}

func (b *SpotBuilder) WithActive(active bool) *SpotBuilder {
	b.active = active
	return b
}

func (b *SpotBuilder) WithRate(minutes string, price float64) *SpotBuilder {
	b.rates[minutes] = price
	return b
}

func (b *SpotBuilder) WithoutRates() *SpotBuilder {
	b.rates = map[string]float64{}
	return b
}

func (b *SpotBuilder) BuildCreateRequestDTO() reqdto.CreateSpotRequest {
	return reqdto.CreateSpotRequest{ID: b.id}
}

func (b *SpotBuilder) BuildSetRatesRequestDTO() reqdto.SetRatesRequest {
	rates := make(map[string]any, len(b.rates))
	for k, v := range b.rates {
		rates[k] = v
	}
	return reqdto.SetRatesRequest{Rates: rates}
}

func (b *SpotBuilder) BuildView() *queries.SpotView {
	rates := make(map[string]float64, len(b.rates))
	for k, v := range b.rates {
		rates[k] = v
	}
	return &queries.SpotView{
		ID:     b.id,
		Active: b.active,
		Rates:  rates,
	}
}
