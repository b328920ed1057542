// Package filestore persists state as two pretty-printed JSON documents,
// spots.json and bookings.json, under one data directory.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gpark/internal/infra"
	"gpark/internal/usecase/shared"
)

const (
	SpotsFile    = "spots.json"
	BookingsFile = "bookings.json"
)

type Store struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Load creates the directory and any missing file with an empty array.
func (s *Store) Load(ctx context.Context) (*shared.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindIOFailure, "create data directory", err)
	}

	snap := &shared.Snapshot{
		Spots:        []shared.SpotRecord{},
		Reservations: []shared.ReservationRecord{},
	}
	if err := s.readOrInit(SpotsFile, &snap.Spots); err != nil {
		return nil, err
	}
	if err := s.readOrInit(BookingsFile, &snap.Reservations); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save rewrites both files. Both are staged as temp files before either is
// renamed into place; if the second rename fails the previous spots.json is put back.
func (s *Store) Save(ctx context.Context, snap *shared.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	spots := snap.Spots
	if spots == nil {
		spots = []shared.SpotRecord{}
	}
	bookings := snap.Reservations
	if bookings == nil {
		bookings = []shared.ReservationRecord{}
	}

	spotsTmp, err := s.stageJSON(SpotsFile, spots)
	if err != nil {
		return err
	}
	defer os.Remove(spotsTmp) // no-op after a successful rename

	bookingsTmp, err := s.stageJSON(BookingsFile, bookings)
	if err != nil {
		return err
	}
	defer os.Remove(bookingsTmp)

	spotsPath := filepath.Join(s.dir, SpotsFile)
	previous, err := os.ReadFile(spotsPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "read "+SpotsFile, err)
	}
	hadPrevious := err == nil

	if err := os.Rename(spotsTmp, spotsPath); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "replace "+SpotsFile, err)
	}
	if err := os.Rename(bookingsTmp, filepath.Join(s.dir, BookingsFile)); err != nil {
		s.rollbackSpots(spotsPath, previous, hadPrevious)
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "replace "+BookingsFile, err)
	}
	return nil
}

// rollbackSpots puts back the spots.json that was current before a failed Save.
func (s *Store) rollbackSpots(path string, previous []byte, hadPrevious bool) {
	if !hadPrevious {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("failed to roll back spots file", "path", path, "error", err.Error())
		}
		return
	}
	tmp, err := s.stage(SpotsFile, previous)
	if err == nil {
		err = os.Rename(tmp, path)
		if err != nil {
			os.Remove(tmp)
		}
	}
	if err != nil {
		s.logger.Error("failed to roll back spots file", "path", path, "error", err.Error())
	}
}

func (s *Store) readOrInit(name string, dst any) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("initialising missing data file", "path", path)
		return s.writeJSON(name, []struct{}{})
	}
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "read "+name, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindCorruptRecord, "decode "+name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	tmpPath, err := s.stageJSON(name, v)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "replace "+name, err)
	}
	return nil
}

// stageJSON writes v to a synced temp file next to name and returns its path.
func (s *Store) stageJSON(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", infra.WrapStoreErr(s.logger, infra.KindIOFailure, "encode "+name, err)
	}
	return s.stage(name, data)
}

func (s *Store) stage(name string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return "", infra.WrapStoreErr(s.logger, infra.KindIOFailure, "create temp file for "+name, err)
	}
	tmpPath := tmp.Name()

	fail := func(op string, err error) (string, error) {
		tmp.Close()
		os.Remove(tmpPath)
		return "", infra.WrapStoreErr(s.logger, infra.KindIOFailure, op+" "+name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", infra.WrapStoreErr(s.logger, infra.KindIOFailure, "close "+name, err)
	}
	return tmpPath, nil
}
