//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedSpot inserts a spot with rates given in cents, appended after existing spots.
func SeedSpot(t *testing.T, db DBLike, id string, active bool, ratesCents map[int]int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO spots (id, active, position) VALUES ($1, $2, (SELECT COALESCE(MAX(position), -1) + 1 FROM spots))",
		id, active)
	require.NoError(t, err)

	for minutes, cents := range ratesCents {
		_, err := db.Exec(ctx,
			"INSERT INTO spot_rates (spot_id, duration_minutes, price_cents) VALUES ($1, $2, $3)",
			id, minutes, cents)
		require.NoError(t, err)
	}
}

func CountReservations(t *testing.T, db DBLike, spotID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reservations WHERE spot_id = $1", spotID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
