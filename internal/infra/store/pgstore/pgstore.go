// Package pgstore persists state in PostgreSQL. Every Save rewrites all rows in
// a single serializable transaction, so readers never see a partial state.
package pgstore

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strconv"

	"gpark/internal/infra"
	"gpark/internal/pkg/pgconv"
	"gpark/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is satisfied by *pgxpool.Pool and *pgx.Conn.
type DB interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Store struct {
	db     DB
	logger *slog.Logger
}

func New(db DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

func (s *Store) Load(ctx context.Context) (*shared.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "begin load transaction", err)
	}
	defer rollback(ctx, tx, s.logger)

	snap := &shared.Snapshot{
		Spots:        []shared.SpotRecord{},
		Reservations: []shared.ReservationRecord{},
	}

	if snap.Spots, err = s.loadSpots(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Reservations, err = s.loadReservations(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "commit load transaction", err)
	}
	return snap, nil
}

func (s *Store) loadSpots(ctx context.Context, tx pgx.Tx) ([]shared.SpotRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT s.id, s.active, r.duration_minutes, r.price_cents
		FROM spots s
		LEFT JOIN spot_rates r ON r.spot_id = s.id
		ORDER BY s.position, r.duration_minutes`)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "query spots", err)
	}
	defer rows.Close()

	spots := []shared.SpotRecord{}
	for rows.Next() {
		var (
			id       string
			active   bool
			duration pgtype.Int4
			cents    pgtype.Int8
		)
		if err := rows.Scan(&id, &active, &duration, &cents); err != nil {
			return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "scan spot", err)
		}

		if n := len(spots); n == 0 || spots[n-1].ID != id {
			spots = append(spots, shared.SpotRecord{ID: id, Active: active, Rates: map[string]float64{}})
		}
		// spots without rates come back with NULL rate columns
		minutes, price := pgconv.Int32PtrFromPgtype(duration), pgconv.Int64PtrFromPgtype(cents)
		if minutes != nil && price != nil {
			spots[len(spots)-1].Rates[strconv.Itoa(int(*minutes))] = float64(*price) / 100
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "iterate spots", err)
	}
	return spots, nil
}

func (s *Store) loadReservations(ctx context.Context, tx pgx.Tx) ([]shared.ReservationRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, spot_id, license_plate, duration_minutes, created_at
		FROM reservations
		ORDER BY position`)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "query reservations", err)
	}
	defer rows.Close()

	out := []shared.ReservationRecord{}
	for rows.Next() {
		var (
			id        pgtype.UUID
			spotID    string
			plate     string
			duration  int32
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &spotID, &plate, &duration, &createdAt); err != nil {
			return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "scan reservation", err)
		}
		rec := shared.ReservationRecord{
			ParkingSpotID: spotID,
			LicensePlate:  plate,
			Duration:      int(duration),
			Timestamp:     pgconv.MillisFromPgtype(createdAt),
		}
		if u, ok := pgconv.UUIDFromPgtype(id); ok {
			rec.ID = u.String()
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "iterate reservations", err)
	}
	return out, nil
}

// Save replaces every row. Serialization failures surface as *pgconn.PgError so
// the unit of work can retry them.
func (s *Store) Save(ctx context.Context, snap *shared.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "begin save transaction", err)
	}
	defer rollback(ctx, tx, s.logger)

	// spot_rates goes with spots via ON DELETE CASCADE
	if _, err := tx.Exec(ctx, `DELETE FROM reservations`); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "clear reservations", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM spots`); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "clear spots", err)
	}

	spotRows, rateRows, err := spotCopyRows(snap.Spots)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindCorruptRecord, "encode spots", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"spots"},
		[]string{"id", "active", "position"}, pgx.CopyFromRows(spotRows)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "copy spots", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"spot_rates"},
		[]string{"spot_id", "duration_minutes", "price_cents"}, pgx.CopyFromRows(rateRows)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "copy spot rates", err)
	}

	resRows, err := reservationCopyRows(snap.Reservations)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindCorruptRecord, "encode reservations", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"reservations"},
		[]string{"id", "spot_id", "license_plate", "duration_minutes", "created_at", "position"},
		pgx.CopyFromRows(resRows)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "copy reservations", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "commit save transaction", err)
	}
	return nil
}

func spotCopyRows(spots []shared.SpotRecord) ([][]any, [][]any, error) {
	spotRows := make([][]any, 0, len(spots))
	rateRows := [][]any{}
	for i, sp := range spots {
		spotRows = append(spotRows, []any{sp.ID, sp.Active, int32(i)})

		keys := make([]string, 0, len(sp.Rates))
		for k := range sp.Rates {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			minutes, err := strconv.Atoi(k)
			if err != nil {
				return nil, nil, err
			}
			rateRows = append(rateRows, []any{sp.ID, int32(minutes), int64(math.Round(sp.Rates[k] * 100))})
		}
	}
	return spotRows, rateRows, nil
}

func reservationCopyRows(records []shared.ReservationRecord) ([][]any, error) {
	rows := make([][]any, 0, len(records))
	for i, r := range records {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []any{
			pgconv.UUIDToPgtype(id),
			r.ParkingSpotID,
			r.LicensePlate,
			int32(r.Duration),
			pgconv.MillisToPgtype(r.Timestamp),
			int64(i),
		})
	}
	return rows, nil
}

func rollback(ctx context.Context, tx pgx.Tx, logger *slog.Logger) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Warn("failed to rollback transaction", "error", err)
	}
}
