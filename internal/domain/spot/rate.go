package spot

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
)

var ErrInvalidRate = errors.New("invalid rate")

// MaxPriceCents bounds a single rate so cents stay exact as a JSON number.
const MaxPriceCents int64 = 100_000_000_000

// Price is a non-negative amount held in cents.
type Price struct {
	cents int64
}

func NewPriceFromCents(cents int64) (Price, error) {
	if cents < 0 || cents > MaxPriceCents {
		return Price{}, ErrInvalidRate
	}
	return Price{cents: cents}, nil
}

// NewPriceFromFloat rounds half away from zero to whole cents.
func NewPriceFromFloat(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Price{}, ErrInvalidRate
	}
	cents := math.Round(v * 100)
	if cents > float64(MaxPriceCents) {
		return Price{}, ErrInvalidRate
	}
	return Price{cents: int64(cents)}, nil
}

func (p Price) Cents() int64 {
	return p.cents
}

func (p Price) Float64() float64 {
	return float64(p.cents) / 100.0
}

// Rates maps each bookable tier of a spot to its price.
type Rates map[DurationTier]Price

func (r Rates) Clone() Rates {
	out := make(Rates, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Tiers returns the priced tiers in ascending order.
func (r Rates) Tiers() []DurationTier {
	out := make([]DurationTier, 0, len(r))
	for t := range r {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ToWire renders the rates the way they are exposed and stored: tier string -> number.
func (r Rates) ToWire() map[string]float64 {
	out := make(map[string]float64, len(r))
	for t, p := range r {
		out[t.String()] = p.Float64()
	}
	return out
}

// RateError names the tier whose price is non-numeric, negative or too large.
type RateError struct {
	Tier string
}

func (e *RateError) Error() string {
	return "invalid rate for " + e.Tier
}

func (e *RateError) Is(target error) bool {
	return target == ErrInvalidRate
}

// ParseRates validates raw rate input. Keys are checked in ascending order so the
// reported offender does not depend on map iteration.
func ParseRates(input map[string]any) (Rates, error) {
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rates := make(Rates, len(input))
	for _, key := range keys {
		tier, err := ParseTier(key)
		if err != nil {
			return nil, err
		}

		amount, ok := numericValue(input[key])
		if !ok {
			return nil, &RateError{Tier: key}
		}
		price, err := NewPriceFromFloat(amount)
		if err != nil {
			return nil, &RateError{Tier: key}
		}
		rates[tier] = price
	}
	return rates, nil
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
