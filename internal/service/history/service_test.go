package history

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
)

var (
	day     = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	admin   = &domain.User{Username: "Admin", Role: domain.RoleAdmin}
	owner   = &domain.User{Username: "Mahasiswa1", Role: domain.RoleStudent}
	another = &domain.User{Username: "Mahasiswa2", Role: domain.RoleStudent}
)

func newService(t *testing.T) *Service {
	t.Helper()
	reason := "Maintenance"
	repo := memory.NewReservationRepository(
		&domain.Reservation{ID: "p1", Room: "LOBBY", Date: day, Time: "09:00", Requester: "Mahasiswa1", Status: domain.StatusPending, Purpose: "Rapat"},
		&domain.Reservation{ID: "p2", Room: "LOBBY", Date: day, Time: "10:00", Requester: "Mahasiswa1", Status: domain.StatusPending, Purpose: "Rapat"},
		&domain.Reservation{ID: "a1", Room: "AUDITORIUM", Date: day, Time: "13:00", Requester: "Mahasiswa1", Status: domain.StatusApproved},
		&domain.Reservation{ID: "r1", Room: "AUDITORIUM", Date: day, Time: "15:00", Requester: "Mahasiswa2", Status: domain.StatusRejected, RejectionReason: &reason},
	)
	store := reservations.NewStore(repo, logger.NewNop())
	require.NoError(t, store.Load(context.Background()))
	return NewService(store, logger.NewNop())
}

func TestService_ApprovalQueue(t *testing.T) {
	s := newService(t)

	queue := s.ApprovalQueue(context.Background())
	require.Equal(t, 1, queue.Total)
	g := queue.Groups[0]
	assert.Equal(t, []string{"p1", "p2"}, g.IDs)
	assert.Equal(t, "09:00", g.StartTime)
	assert.Equal(t, "11:00", g.EndTime)
	assert.Equal(t, "Pending", g.Status)
}

func TestService_History(t *testing.T) {
	s := newService(t)

	h := s.History(context.Background())
	require.Equal(t, 2, h.Total)
	// Позднее время первым
	assert.Equal(t, "15:00", h.Groups[0].StartTime)
	require.NotNil(t, h.Groups[0].RejectionReason)
	assert.Equal(t, "Maintenance", *h.Groups[0].RejectionReason)
}

func TestService_StudentHistoryAccess(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	own, err := s.StudentHistory(ctx, "Mahasiswa1", owner)
	require.NoError(t, err)
	assert.Equal(t, 2, own.Total)

	_, err = s.StudentHistory(ctx, "Mahasiswa1", admin)
	assert.NoError(t, err)

	_, err = s.StudentHistory(ctx, "Mahasiswa1", another)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.StudentHistory(ctx, "Mahasiswa1", nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	r, err := s.GetByID(ctx, "a1", owner)
	require.NoError(t, err)
	assert.Equal(t, "AUDITORIUM", r.Room)
	assert.Equal(t, "2024-05-01", r.Date)
	assert.Equal(t, []string{}, r.Equipment)

	_, err = s.GetByID(ctx, "a1", another)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.GetByID(ctx, "missing", admin)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
