package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"sync"
	"time"

	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errStateLoad          = errs.New("failed to load persisted state")
	errStateSave          = errs.New("failed to save state")
	errMaxRetriesExceeded = errs.New("save failed after max retries")
)

// StateUoW is the single serialisation point for every mutation of the engine's
// state. The committed state is replaced only after the store has saved the draft.
type StateUoW struct {
	mu        sync.RWMutex
	store     shared.StateStore
	committed *shared.State

	maxRetries  int
	backoffBase time.Duration
}

type Option func(*StateUoW)

func WithRetry(maxRetries int, base time.Duration) Option {
	return func(u *StateUoW) {
		u.maxRetries = maxRetries
		u.backoffBase = base
	}
}

func NewStateUoW(ctx context.Context, store shared.StateStore, opts ...Option) (*StateUoW, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, errStateLoad), errs.ErrStorage)
	}

	st, err := shared.StateFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	u := &StateUoW{
		store:       store,
		committed:   st,
		maxRetries:  3,
		backoffBase: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(u)
	}

	slog.Info("state loaded",
		"spots", st.Spots.Len(),
		"reservations", st.Ledger.Len())

	return u, nil
}

func (u *StateUoW) Within(ctx context.Context, fn func(ctx context.Context, st *shared.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	draft := u.committed.Clone()
	if err := fn(ctx, draft); err != nil {
		return err
	}

	if err := u.saveWithRetry(ctx, draft.Snapshot()); err != nil {
		return errs.Mark(err, errs.ErrStorage)
	}

	u.committed = draft
	return nil
}

func (u *StateUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, st *shared.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, u.committed)
}

func (u *StateUoW) saveWithRetry(ctx context.Context, snap *shared.Snapshot) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		err := u.store.Save(ctx, snap)
		if err == nil {
			return nil
		}
		err = errs.Mark(err, errStateSave)

		if !shouldRetry(err, attempt, u.maxRetries) {
			if attempt == u.maxRetries && isRetryableError(err) {
				slog.Error("state save failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.backoffBase)

		slog.Warn("retrying state save due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
