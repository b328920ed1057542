package spot

import (
	"errors"
	"strconv"
	"time"
)

var ErrInvalidTier = errors.New("invalid duration tier")

// DurationTier is a bookable reservation length in minutes.
type DurationTier int

const (
	Tier30Min   DurationTier = 30
	Tier45Min   DurationTier = 45
	Tier1Hour   DurationTier = 60
	Tier2Hours  DurationTier = 120
	Tier4Hours  DurationTier = 240
	Tier8Hours  DurationTier = 480
	Tier12Hours DurationTier = 720
	Tier24Hours DurationTier = 1440
)

var allTiers = []DurationTier{
	Tier30Min,
	Tier45Min,
	Tier1Hour,
	Tier2Hours,
	Tier4Hours,
	Tier8Hours,
	Tier12Hours,
	Tier24Hours,
}

// Tiers returns every duration tier in ascending order.
func Tiers() []DurationTier {
	out := make([]DurationTier, len(allTiers))
	copy(out, allTiers)
	return out
}

func (t DurationTier) IsValid() bool {
	for _, v := range allTiers {
		if v == t {
			return true
		}
	}
	return false
}

func (t DurationTier) Minutes() int {
	return int(t)
}

func (t DurationTier) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

func (t DurationTier) String() string {
	return strconv.Itoa(int(t))
}

func TierFromMinutes(minutes int) (DurationTier, error) {
	t := DurationTier(minutes)
	if !t.IsValid() {
		return 0, &TierError{Tier: strconv.Itoa(minutes)}
	}
	return t, nil
}

// ParseTier only accepts the canonical spelling, so "030" is rejected.
func ParseTier(s string) (DurationTier, error) {
	for _, t := range allTiers {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, &TierError{Tier: s}
}

// TierError names the key that is not a duration tier.
type TierError struct {
	Tier string
}

func (e *TierError) Error() string {
	return "invalid duration: " + e.Tier
}

func (e *TierError) Is(target error) bool {
	return target == ErrInvalidTier
}
