// Package memstore keeps the persisted state in process memory.
package memstore

import (
	"context"
	"sync"

	"gpark/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type Store struct {
	mu   sync.Mutex
	snap *shared.Snapshot
	// FailSave, when set, is returned by Save without storing anything.
	FailSave error
	saves    int
}

func New(initial *shared.Snapshot) *Store {
	return &Store{snap: copySnapshot(initial)}
}

func (s *Store) Load(ctx context.Context) (*shared.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.snap), nil
}

func (s *Store) Save(ctx context.Context, snap *shared.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.snap = copySnapshot(snap)
	s.saves++
	return nil
}

func (s *Store) SetFailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailSave = err
}

func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func copySnapshot(in *shared.Snapshot) *shared.Snapshot {
	out := &shared.Snapshot{
		Spots:        []shared.SpotRecord{},
		Reservations: []shared.ReservationRecord{},
	}
	if in == nil {
		return out
	}
	// Deep copy so callers can never alias the stored rate maps.
	if err := copier.CopyWithOption(out, in, copier.Option{DeepCopy: true}); err != nil {
		panic("memstore: copy snapshot: " + err.Error())
	}
	return out
}
