package shared

import (
	"time"

	"gpark/internal/domain/reservation"
	"gpark/internal/domain/spot"
	"gpark/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCorruptSnapshot = errs.New("corrupt state snapshot")

// State is the whole persisted aggregate: spot registry plus reservation ledger.
type State struct {
	Spots  *spot.Registry
	Ledger *reservation.Ledger
}

func NewState() *State {
	return &State{
		Spots:  spot.NewRegistry(),
		Ledger: reservation.NewLedger(),
	}
}

func (s *State) Clone() *State {
	return &State{
		Spots:  s.Spots.Clone(),
		Ledger: s.Ledger.Clone(),
	}
}

// Wire-level records, shared by every StateStore implementation
type SpotRecord struct {
	ID     string             `json:"id"`
	Active bool               `json:"active"`
	Rates  map[string]float64 `json:"rates"`
}

type ReservationRecord struct {
	ID            string `json:"id,omitempty"`
	ParkingSpotID string `json:"parkingSpotId"`
	LicensePlate  string `json:"licensePlate"`
	Duration      int    `json:"duration"`
	Timestamp     int64  `json:"timestamp"` // epoch ms
}

type Snapshot struct {
	Spots        []SpotRecord        `json:"spots"`
	Reservations []ReservationRecord `json:"reservations"`
}

func (s *State) Snapshot() *Snapshot {
	spots := s.Spots.List()
	entries := s.Ledger.ListAll()

	snap := &Snapshot{
		Spots:        make([]SpotRecord, 0, len(spots)),
		Reservations: make([]ReservationRecord, 0, len(entries)),
	}
	for _, sp := range spots {
		snap.Spots = append(snap.Spots, SpotRecord{
			ID:     sp.ID(),
			Active: sp.IsActive(),
			Rates:  sp.Rates().ToWire(),
		})
	}
	for _, r := range entries {
		snap.Reservations = append(snap.Reservations, ReservationRecord{
			ID:            r.ID().String(),
			ParkingSpotID: r.SpotID(),
			LicensePlate:  r.LicensePlate(),
			Duration:      r.DurationTier().Minutes(),
			Timestamp:     r.CreatedAt().UnixMilli(),
		})
	}
	return snap
}

// StateFromSnapshot rebuilds the aggregate. Rates go through the same validation
// as operator input; reservations are restored as recorded.
func StateFromSnapshot(snap *Snapshot) (*State, error) {
	st := NewState()
	if snap == nil {
		return st, nil
	}

	for _, rec := range snap.Spots {
		raw := make(map[string]any, len(rec.Rates))
		for k, v := range rec.Rates {
			raw[k] = v
		}
		rates, err := spot.ParseRates(raw)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "spot %q", rec.ID), ErrCorruptSnapshot)
		}
		if err := st.Spots.Restore(spot.ReconstructSpot(rec.ID, rec.Active, rates)); err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "spot %q", rec.ID), ErrCorruptSnapshot)
		}
	}

	for _, rec := range snap.Reservations {
		id := uuid.Nil
		if rec.ID != "" {
			parsed, err := uuid.Parse(rec.ID)
			if err != nil {
				return nil, errs.Mark(errs.Wrapf(err, "reservation %q", rec.ID), ErrCorruptSnapshot)
			}
			id = parsed
		}
		st.Ledger.Restore(reservation.ReconstructReservation(
			id,
			rec.ParkingSpotID,
			rec.LicensePlate,
			spot.DurationTier(rec.Duration),
			time.UnixMilli(rec.Timestamp),
		))
	}
	return st, nil
}
