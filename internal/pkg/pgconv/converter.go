package pgconv

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Null columns from outer joins come back as nil.
func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

func UUIDFromPgtype(pu pgtype.UUID) (uuid.UUID, bool) {
	if !pu.Valid {
		return uuid.Nil, false
	}
	return uuid.UUID(pu.Bytes), true
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// Epoch milliseconds are the wire precision of reservation timestamps.
func MillisToPgtype(ms int64) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.UnixMilli(ms).UTC(), Valid: true}
}

func MillisFromPgtype(pt pgtype.Timestamptz) int64 {
	if !pt.Valid {
		return 0
	}
	return pt.Time.UnixMilli()
}
