package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/logger"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

var testDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T, hours ...int) (*Workflow, *reservations.Store, []string) {
	t.Helper()
	ctx := context.Background()

	store := reservations.NewStore(memory.NewReservationRepository(), logger.NewNop())
	require.NoError(t, store.Load(ctx))

	batch := make([]*domain.Reservation, 0, len(hours))
	for _, h := range hours {
		batch = append(batch, &domain.Reservation{
			Room:      "AUDITORIUM",
			Date:      testDate,
			Time:      types.NewHourMark(h),
			Requester: "Mahasiswa1",
		})
	}
	created, err := store.Create(ctx, batch)
	require.NoError(t, err)

	ids := make([]string, 0, len(created))
	for _, r := range created {
		ids = append(ids, r.ID)
	}
	return NewWorkflow(store, logger.NewNop()), store, ids
}

func TestWorkflow_ApproveGroup(t *testing.T) {
	ctx := context.Background()
	w, store, ids := setup(t, 9, 10, 11)

	result, err := w.ApproveGroup(ctx, ids)
	require.NoError(t, err)
	assert.True(t, result.Complete())
	assert.ElementsMatch(t, ids, result.Succeeded)

	for _, id := range ids {
		r, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, r.Status)
	}

	// Повторное согласование не проходит: Approved терминален
	again, err := w.ApproveGroup(ctx, ids)
	require.NoError(t, err)
	assert.Empty(t, again.Succeeded)
	assert.Len(t, again.Failed, 3)
}

func TestWorkflow_RejectGroupFreesSlots(t *testing.T) {
	ctx := context.Background()
	w, store, ids := setup(t, 13, 14)

	result, err := w.RejectGroup(ctx, ids, "  Maintenance ")
	require.NoError(t, err)
	assert.True(t, result.Complete())

	for _, id := range ids {
		r, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, r.Status)
		require.NotNil(t, r.RejectionReason)
		assert.Equal(t, "Maintenance", *r.RejectionReason)
	}

	assert.False(t, store.IsSlotTaken(domain.Slot{Room: "AUDITORIUM", Date: testDate, Time: "13:00"}))
	assert.False(t, store.IsSlotTaken(domain.Slot{Room: "AUDITORIUM", Date: testDate, Time: "14:00"}))
}

func TestWorkflow_ValidationBeforeMutation(t *testing.T) {
	ctx := context.Background()
	w, store, ids := setup(t, 9)

	_, err := w.ApproveGroup(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyGroup)

	_, err = w.RejectGroup(ctx, []string{}, "x")
	assert.ErrorIs(t, err, ErrEmptyGroup)

	_, err = w.RejectGroup(ctx, ids, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)

	long := make([]rune, domain.MaxRejectionReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = w.RejectGroup(ctx, ids, string(long))
	assert.ErrorIs(t, err, ErrInvalidInput)

	r, err := store.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, r.Status)
}

func TestWorkflow_PartialReport(t *testing.T) {
	ctx := context.Background()
	w, _, ids := setup(t, 9, 10)

	_, err := w.ApproveGroup(ctx, ids[:1])
	require.NoError(t, err)

	result, err := w.RejectGroup(ctx, ids, "Bentrok jadwal")
	require.NoError(t, err)
	assert.True(t, result.Partial())
	assert.Equal(t, []string{ids[1]}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.ErrorIs(t, result.Failed[0].Err, reservations.ErrInvalidTransition)
}
