package reservation

import (
	"errors"
	"time"
)

var ErrConflict = errors.New("spot already has an active reservation")

// Ledger keeps reservations in acceptance order. Expired entries stay until Reap.
// Like spot.Registry it is not safe for concurrent use on its own.
type Ledger struct {
	entries []*Reservation
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) IsFree(spotID string, now time.Time) bool {
	for _, r := range l.entries {
		if r.spotID == spotID && !r.IsExpired(now) {
			return false
		}
	}
	return true
}

// HasLive is the inverse of IsFree, named for the spot deletion guard.
func (l *Ledger) HasLive(spotID string, now time.Time) bool {
	return !l.IsFree(spotID, now)
}

// Insert re-checks exclusivity at the reservation's own creation instant.
func (l *Ledger) Insert(r *Reservation) error {
	if !l.IsFree(r.spotID, r.createdAt) {
		return ErrConflict
	}
	l.entries = append(l.entries, r)
	return nil
}

// Restore appends a persisted reservation without re-validating it.
func (l *Ledger) Restore(r *Reservation) {
	l.entries = append(l.entries, r)
}

func (l *Ledger) ListActive(now time.Time) []*Reservation {
	out := make([]*Reservation, 0, len(l.entries))
	for _, r := range l.entries {
		if !r.IsExpired(now) {
			out = append(out, r)
		}
	}
	return out
}

func (l *Ledger) ListAll() []*Reservation {
	out := make([]*Reservation, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reap drops every reservation expired at now and returns how many were removed.
func (l *Ledger) Reap(now time.Time) int {
	kept := l.entries[:0]
	removed := 0
	for _, r := range l.entries {
		if r.IsExpired(now) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(l.entries); i++ {
		l.entries[i] = nil
	}
	l.entries = kept
	return removed
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Clone copies the slice; reservations are immutable so they are shared.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{entries: make([]*Reservation, len(l.entries))}
	copy(c.entries, l.entries)
	return c
}
