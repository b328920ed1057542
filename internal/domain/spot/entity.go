package spot

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID     = errors.New("spot id cannot be empty")
	ErrIDTooLong   = errors.New("spot id is too long (max 64 characters)")
	ErrDuplicateID = errors.New("spot already exists")
	ErrNotFound    = errors.New("spot not found")
)

const (
	MaxIDLength = 64
)

type Spot struct {
	id     string
	active bool
	rates  Rates
}

func NewSpot(id string) (*Spot, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}

	return &Spot{
		id:     id,
		active: true,
		rates:  Rates{},
	}, nil
}

// ReconstructSpot rebuilds a spot from persisted data.
func ReconstructSpot(id string, active bool, rates Rates) *Spot {
	if rates == nil {
		rates = Rates{}
	}
	return &Spot{
		id:     id,
		active: active,
		rates:  rates.Clone(),
	}
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyID
	}
	if len(id) > MaxIDLength {
		return "", ErrIDTooLong
	}
	return id, nil
}

func (s *Spot) SetActive(active bool) {
	s.active = active
}

// ReplaceRates swaps the whole rate table; tiers missing from rates become unbookable.
func (s *Spot) ReplaceRates(rates Rates) {
	s.rates = rates.Clone()
}

// Quote looks up the price of a tier on this spot only; there is no fallback price.
func (s *Spot) Quote(tier DurationTier) (Price, bool) {
	p, ok := s.rates[tier]
	return p, ok
}

func (s *Spot) IsBookable(tier DurationTier) bool {
	_, ok := s.rates[tier]
	return s.active && ok
}

func (s *Spot) clone() *Spot {
	return &Spot{
		id:     s.id,
		active: s.active,
		rates:  s.rates.Clone(),
	}
}

func (s *Spot) ID() string     { return s.id }
func (s *Spot) IsActive() bool { return s.active }
func (s *Spot) Rates() Rates   { return s.rates.Clone() }
