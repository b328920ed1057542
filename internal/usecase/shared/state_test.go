//go:build unit

package shared_test

import (
	"testing"
	"time"

	"gpark/internal/domain/reservation"
	"gpark/internal/domain/spot"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func seededState(t *testing.T) *shared.State {
	t.Helper()
	st := shared.NewState()

	_, err := st.Spots.Create("10007")
	require.NoError(t, err)
	rates, err := spot.ParseRates(map[string]any{"30": 2.5, "60": 4.0})
	require.NoError(t, err)
	_, err = st.Spots.SetRates("10007", rates)
	require.NoError(t, err)

	_, err = st.Spots.Create("10008")
	require.NoError(t, err)
	_, err = st.Spots.SetActive("10008", false)
	require.NoError(t, err)

	r, err := reservation.NewReservation("10007", "ABC-123", spot.Tier30Min, t0)
	require.NoError(t, err)
	require.NoError(t, st.Ledger.Insert(r))
	return st
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := seededState(t)
	snap := st.Snapshot()

	require.Len(t, snap.Spots, 2)
	assert.Equal(t, "10007", snap.Spots[0].ID)
	assert.False(t, snap.Spots[1].Active)
	require.Len(t, snap.Reservations, 1)
	assert.Equal(t, t0.UnixMilli(), snap.Reservations[0].Timestamp)
	assert.Equal(t, 30, snap.Reservations[0].Duration)

	restored, err := shared.StateFromSnapshot(snap)
	require.NoError(t, err)

	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch after restore (-want +got):\n%s", diff)
	}
	assert.False(t, restored.Ledger.IsFree("10007", t0.Add(time.Minute)))
}

func TestStateFromSnapshot(t *testing.T) {
	t.Run("nil snapshot is an empty state", func(t *testing.T) {
		st, err := shared.StateFromSnapshot(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, st.Spots.Len())
		assert.Equal(t, 0, st.Ledger.Len())
	})

	t.Run("records without id get one", func(t *testing.T) {
		st, err := shared.StateFromSnapshot(&shared.Snapshot{
			Reservations: []shared.ReservationRecord{
				{ParkingSpotID: "1", LicensePlate: "X", Duration: 30, Timestamp: t0.UnixMilli()},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, st.Snapshot().Reservations[0].ID)
	})

	testCases := []struct {
		name string
		snap *shared.Snapshot
	}{
		{
			name: "invalid tier in rates",
			snap: &shared.Snapshot{Spots: []shared.SpotRecord{{ID: "1", Active: true, Rates: map[string]float64{"99": 1}}}},
		},
		{
			name: "negative rate",
			snap: &shared.Snapshot{Spots: []shared.SpotRecord{{ID: "1", Active: true, Rates: map[string]float64{"30": -1}}}},
		},
		{
			name: "duplicate spot",
			snap: &shared.Snapshot{Spots: []shared.SpotRecord{{ID: "1"}, {ID: "1"}}},
		},
		{
			name: "malformed reservation id",
			snap: &shared.Snapshot{Reservations: []shared.ReservationRecord{{ID: "not-a-uuid", ParkingSpotID: "1", Duration: 30}}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shared.StateFromSnapshot(tc.snap)
			require.Error(t, err)
			assert.True(t, errs.Is(err, shared.ErrCorruptSnapshot))
		})
	}
}

func TestStateClone(t *testing.T) {
	st := seededState(t)
	draft := st.Clone()

	_, err := draft.Spots.Create("NEW")
	require.NoError(t, err)
	draft.Ledger.Reap(t0.Add(time.Hour))

	assert.Equal(t, 2, st.Spots.Len())
	assert.Equal(t, 1, st.Ledger.Len())
	assert.Equal(t, 3, draft.Spots.Len())
	assert.Equal(t, 0, draft.Ledger.Len())
}
