package reservation

import (
	"time"

	"gpark/internal/domain/spot"
)

func ExpiresAt(createdAt time.Time, tier spot.DurationTier) time.Time {
	return createdAt.Add(tier.Duration())
}

// IsExpired treats now == expiresAt as expired, so a spot is never both free and occupied.
func IsExpired(r *Reservation, now time.Time) bool {
	return !now.Before(r.ExpiresAt())
}

// Remaining is zero once the reservation has expired.
func Remaining(r *Reservation, now time.Time) time.Duration {
	left := r.ExpiresAt().Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Covers reports whether the reservation holds its spot at instant t.
func Covers(r *Reservation, t time.Time) bool {
	return !t.Before(r.createdAt) && t.Before(r.ExpiresAt())
}

func (r *Reservation) ExpiresAt() time.Time {
	return ExpiresAt(r.createdAt, r.tier)
}

func (r *Reservation) IsExpired(now time.Time) bool {
	return IsExpired(r, now)
}
