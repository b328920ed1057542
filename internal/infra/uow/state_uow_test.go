//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gpark/internal/infra/store/memstore"
	"gpark/internal/infra/uow"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/shared"
	sharedmock "gpark/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUoW(t *testing.T, store shared.StateStore) *uow.StateUoW {
	t.Helper()
	u, err := uow.NewStateUoW(context.Background(), store, uow.WithRetry(2, time.Millisecond))
	require.NoError(t, err)
	return u
}

func spotCount(t *testing.T, u *uow.StateUoW) int {
	t.Helper()
	n := 0
	require.NoError(t, u.WithinReadOnly(context.Background(), func(_ context.Context, st *shared.State) error {
		n = st.Spots.Len()
		return nil
	}))
	return n
}

func TestWithinCommitsAfterSave(t *testing.T) {
	store := memstore.New(nil)
	u := newUoW(t, store)

	err := u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
		_, err := st.Spots.Create("10007")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, spotCount(t, u))
	assert.Equal(t, 1, store.Saves())

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Spots, 1)
	assert.Equal(t, "10007", snap.Spots[0].ID)
}

func TestWithinDiscardsDraftOnError(t *testing.T) {
	store := memstore.New(nil)
	u := newUoW(t, store)
	rejected := errors.New("rejected")

	err := u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
		if _, err := st.Spots.Create("10007"); err != nil {
			return err
		}
		return rejected
	})
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 0, spotCount(t, u))
	assert.Equal(t, 0, store.Saves(), "nothing is saved when fn fails")
}

func TestWithinDoesNotCommitWhenSaveFails(t *testing.T) {
	store := memstore.New(nil)
	u := newUoW(t, store)
	store.SetFailSave(errors.New("disk full"))

	err := u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
		_, err := st.Spots.Create("10007")
		return err
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrStorage))
	assert.Equal(t, errs.CategoryStorage, errs.CategoryOf(err))
	assert.Equal(t, 0, spotCount(t, u))

	// the store recovers and the same mutation goes through
	store.SetFailSave(nil)
	err = u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
		_, err := st.Spots.Create("10007")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, spotCount(t, u))
}

func TestSaveRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}

	t.Run("retries serialization failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockStateStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(&shared.Snapshot{}, nil)
		gomock.InOrder(
			store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(serialization),
			store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)

		u := newUoW(t, store)
		err := u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
			_, err := st.Spots.Create("A")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, spotCount(t, u))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockStateStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(&shared.Snapshot{}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(serialization).Times(3)

		u := newUoW(t, store)
		err := u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
			_, err := st.Spots.Create("A")
			return err
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorage))
		assert.Equal(t, 0, spotCount(t, u))
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockStateStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(&shared.Snapshot{}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"}).Times(1)

		u := newUoW(t, store)
		err := u.Within(context.Background(), func(_ context.Context, st *shared.State) error {
			_, err := st.Spots.Create("A")
			return err
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}

func TestNewStateUoW(t *testing.T) {
	t.Run("load failure is a storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockStateStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("unreachable"))

		_, err := uow.NewStateUoW(context.Background(), store)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})

	t.Run("corrupt snapshot is refused", func(t *testing.T) {
		store := memstore.New(&shared.Snapshot{
			Spots: []shared.SpotRecord{{ID: "1", Rates: map[string]float64{"99": 1}}},
		})
		_, err := uow.NewStateUoW(context.Background(), store)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrCorruptSnapshot))
	})
}

func TestCancelledContext(t *testing.T) {
	u := newUoW(t, memstore.New(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := u.Within(ctx, func(context.Context, *shared.State) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = u.WithinReadOnly(ctx, func(context.Context, *shared.State) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
