package reservations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/logger"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

var testDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("r%d", g.n)
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) LoadAll(ctx context.Context) ([]*domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *mockRepo) CreateBatch(ctx context.Context, reservations []*domain.Reservation) error {
	return m.Called(ctx, reservations).Error(0)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, reason *string, updatedAt time.Time) error {
	return m.Called(ctx, id, status, reason, updatedAt).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type countingMetrics struct {
	created   int
	statuses  map[string]int
	cancelled int
}

func (c *countingMetrics) ReservationsCreated(n int) { c.created += n }
func (c *countingMetrics) StatusChanged(status string, n int) {
	if c.statuses == nil {
		c.statuses = map[string]int{}
	}
	c.statuses[status] += n
}
func (c *countingMetrics) ReservationsCancelled(n int) { c.cancelled += n }

func newStore(t *testing.T, repo Repository, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{
		WithTimeProvider(fixedTime{now: testDate.Add(8 * time.Hour)}),
		WithIDGenerator(&seqIDs{}),
	}, opts...)
	s := NewStore(repo, logger.NewNop(), opts...)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func req(room string, hour int, user string) *domain.Reservation {
	return &domain.Reservation{
		Room:      room,
		Date:      testDate,
		Time:      types.NewHourMark(hour),
		Requester: user,
		Purpose:   "Rapat himpunan",
	}
}

func TestStore_CreateAssignsIDsAndPending(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewReservationRepository()
	metrics := &countingMetrics{}
	s := newStore(t, repo, WithMetrics(metrics))

	created, err := s.Create(ctx, []*domain.Reservation{
		req("LOBBY", 9, "Mahasiswa1"),
		req("LOBBY", 10, "Mahasiswa1"),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, "r1", created[0].ID)
	assert.Equal(t, "r2", created[1].ID)
	for _, r := range created {
		assert.Equal(t, domain.StatusPending, r.Status)
		assert.Nil(t, r.RejectionReason)
	}
	assert.Equal(t, 2, repo.Len())
	assert.Equal(t, 2, metrics.created)
	assert.True(t, s.IsSlotTaken(domain.Slot{Room: "LOBBY", Date: testDate, Time: "09:00"}))
}

func TestStore_CreateRejectsHeldSlot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewReservationRepository()
	s := newStore(t, repo)

	_, err := s.Create(ctx, []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1")})
	require.NoError(t, err)

	// Вторая заявка на тот же слот отклоняется целиком
	_, err = s.Create(ctx, []*domain.Reservation{
		req("LOBBY", 8, "Mahasiswa2"),
		req("LOBBY", 9, "Mahasiswa2"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Len(t, s.List(ctx), 1)
	assert.Equal(t, 1, repo.Len())
}

func TestStore_CreateRejectsDuplicateInBatch(t *testing.T) {
	s := newStore(t, memory.NewReservationRepository())

	_, err := s.Create(context.Background(), []*domain.Reservation{
		req("LOBBY", 9, "Mahasiswa1"),
		req("LOBBY", 9, "Mahasiswa1"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestStore_CreateValidation(t *testing.T) {
	s := newStore(t, memory.NewReservationRepository())
	ctx := context.Background()

	_, err := s.Create(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := req("LOBBY", 9, "Mahasiswa1")
	bad.Time = "9am"
	_, err = s.Create(ctx, []*domain.Reservation{bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create(ctx, []*domain.Reservation{req("", 9, "Mahasiswa1")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStore_NotLoaded(t *testing.T) {
	s := NewStore(memory.NewReservationRepository(), logger.NewNop())

	_, err := s.Create(context.Background(), []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1")})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestStore_PersistenceFailureLeavesMemoryUntouched(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	repo.On("LoadAll", mock.Anything).Return([]*domain.Reservation{}, nil)
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	s := newStore(t, repo)

	_, err := s.Create(ctx, []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1")})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, s.List(ctx))
	assert.False(t, s.IsSlotTaken(domain.Slot{Room: "LOBBY", Date: testDate, Time: "09:00"}))
	repo.AssertExpectations(t)
}

func TestStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memory.NewReservationRepository())

	created, err := s.Create(ctx, []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1")})
	require.NoError(t, err)
	id := created[0].ID

	// Отклонение без причины недопустимо
	_, err = s.UpdateStatus(ctx, id, domain.StatusRejected, "  ")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(ctx, id, domain.StatusPending, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(ctx, id, domain.ReservationStatus("Archived"), "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	updated, err := s.UpdateStatus(ctx, id, domain.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.Equal(t, id, updated.ID)

	// Approved терминален
	_, err = s.UpdateStatus(ctx, id, domain.StatusRejected, "late")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(ctx, "missing", domain.StatusApproved, "")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestStore_RejectFreesSlot(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memory.NewReservationRepository())
	slot := domain.Slot{Room: "AUDITORIUM", Date: testDate, Time: "13:00"}

	created, err := s.Create(ctx, []*domain.Reservation{req("AUDITORIUM", 13, "Mahasiswa1")})
	require.NoError(t, err)
	assert.True(t, s.IsSlotTaken(slot))

	rejected, err := s.UpdateStatus(ctx, created[0].ID, domain.StatusRejected, "Maintenance")
	require.NoError(t, err)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Maintenance", *rejected.RejectionReason)
	assert.False(t, s.IsSlotTaken(slot))

	// Освобожденный слот снова можно занять
	_, err = s.Create(ctx, []*domain.Reservation{req("AUDITORIUM", 13, "Mahasiswa2")})
	assert.NoError(t, err)
}

func TestStore_UpdateStatusBatchPartial(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	s := newStore(t, memory.NewReservationRepository(), WithMetrics(metrics))

	created, err := s.Create(ctx, []*domain.Reservation{
		req("LOBBY", 9, "Mahasiswa1"),
		req("LOBBY", 10, "Mahasiswa1"),
	})
	require.NoError(t, err)

	_, err = s.UpdateStatus(ctx, created[1].ID, domain.StatusApproved, "")
	require.NoError(t, err)

	result, err := s.UpdateStatusBatch(ctx, []string{created[0].ID, created[1].ID, "ghost", created[0].ID}, domain.StatusApproved, "")
	require.NoError(t, err)

	assert.Equal(t, []string{created[0].ID}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.ErrorIs(t, result.Failed[0].Err, ErrInvalidTransition)
	assert.ErrorIs(t, result.Failed[1].Err, ErrReservationNotFound)
	assert.True(t, result.Partial())
	assert.False(t, result.Complete())
	assert.Equal(t, 2, metrics.statuses[string(domain.StatusApproved)])
}

func TestStore_UpdateStatusBatchRepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	repo.On("LoadAll", mock.Anything).Return([]*domain.Reservation{
		{ID: "a", Room: "LOBBY", Date: testDate, Time: "09:00", Requester: "Mahasiswa1", Status: domain.StatusPending},
		{ID: "b", Room: "LOBBY", Date: testDate, Time: "10:00", Requester: "Mahasiswa1", Status: domain.StatusPending},
	}, nil)
	repo.On("UpdateStatus", mock.Anything, "a", domain.StatusApproved, (*string)(nil), mock.Anything).Return(nil)
	repo.On("UpdateStatus", mock.Anything, "b", domain.StatusApproved, (*string)(nil), mock.Anything).Return(errors.New("deadlock"))

	s := newStore(t, repo)

	_, err := s.UpdateStatusBatch(ctx, []string{"a", "b"}, domain.StatusApproved, "")
	assert.ErrorIs(t, err, ErrInternal)

	for _, id := range []string{"a", "b"} {
		r, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, r.Status)
	}
}

func TestStore_Cancel(t *testing.T) {
	ctx := context.Background()
	metrics := &countingMetrics{}
	s := newStore(t, memory.NewReservationRepository(), WithMetrics(metrics))

	created, err := s.Create(ctx, []*domain.Reservation{
		req("LOBBY", 9, "Mahasiswa1"),
		req("LOBBY", 10, "Mahasiswa1"),
		req("LOBBY", 11, "Mahasiswa1"),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Cancel(ctx, created[0].ID, "Mahasiswa2"), ErrAccessDenied)
	require.NoError(t, s.Cancel(ctx, created[0].ID, "Mahasiswa1"))
	assert.ErrorIs(t, s.Cancel(ctx, created[0].ID, "Mahasiswa1"), ErrReservationNotFound)
	assert.False(t, s.IsSlotTaken(domain.Slot{Room: "LOBBY", Date: testDate, Time: "09:00"}))

	_, err = s.UpdateStatus(ctx, created[1].ID, domain.StatusApproved, "")
	require.NoError(t, err)

	result, err := s.CancelBatch(ctx, []string{created[1].ID, created[2].ID}, "Mahasiswa1")
	require.NoError(t, err)
	assert.Equal(t, []string{created[2].ID}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.ErrorIs(t, result.Failed[0].Err, ErrInvalidState)

	assert.Len(t, s.List(ctx), 1)
	assert.Equal(t, 2, metrics.cancelled)
}

func TestStore_LoadSkipsMalformed(t *testing.T) {
	repo := memory.NewReservationRepository(
		&domain.Reservation{ID: "ok", Room: "LOBBY", Date: testDate, Time: "09:00", Requester: "u", Status: domain.StatusApproved},
		&domain.Reservation{ID: "bad-time", Room: "LOBBY", Date: testDate, Time: "9", Requester: "u", Status: domain.StatusPending},
		&domain.Reservation{ID: "bad-status", Room: "LOBBY", Date: testDate, Time: "10:00", Requester: "u", Status: "Menunggu"},
	)
	s := newStore(t, repo)

	all := s.List(context.Background())
	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].ID)
	assert.True(t, s.IsSlotTaken(domain.Slot{Room: "LOBBY", Date: testDate, Time: "09:00"}))
}

func TestStore_ListByDateReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memory.NewReservationRepository())

	other := req("LOBBY", 9, "Mahasiswa1")
	other.Date = testDate.AddDate(0, 0, 1)
	_, err := s.Create(ctx, []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1"), other})
	require.NoError(t, err)

	day := s.ListByDate(ctx, testDate)
	require.Len(t, day, 1)

	day[0].Status = domain.StatusApproved
	stored, err := s.Get(ctx, day[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestStore_ConflictingLegacyRowsKeepSlotHeld(t *testing.T) {
	ctx := context.Background()
	slot := domain.Slot{Room: "LOBBY", Date: testDate, Time: "09:00"}
	repo := memory.NewReservationRepository(
		&domain.Reservation{ID: "a", Room: "LOBBY", Date: testDate, Time: "09:00", Requester: "u1", Status: domain.StatusPending},
		&domain.Reservation{ID: "b", Room: "LOBBY", Date: testDate, Time: "09:00", Requester: "u2", Status: domain.StatusPending},
		&domain.Reservation{ID: "c", Room: "LOBBY", Date: testDate, Time: "09:00", Requester: "u3", Status: domain.StatusPending},
	)
	s := newStore(t, repo)
	require.True(t, s.IsSlotTaken(slot))

	// a отклонена, слот переходит к b
	_, err := s.UpdateStatus(ctx, "a", domain.StatusRejected, "x")
	require.NoError(t, err)
	assert.True(t, s.IsSlotTaken(slot))

	_, err = s.Create(ctx, []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1")})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// b отменена, слот переходит к c
	require.NoError(t, s.Cancel(ctx, "b", ""))
	assert.True(t, s.IsSlotTaken(slot))

	require.NoError(t, s.Cancel(ctx, "c", ""))
	assert.False(t, s.IsSlotTaken(slot))
}

type recordingTx struct{ calls []string }

func (r *recordingTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls = append(r.calls, "Do")
	return fn(ctx)
}

func (r *recordingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls = append(r.calls, "DoSerializable")
	return fn(ctx)
}

func (r *recordingTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls = append(r.calls, "DoReadOnly")
	return fn(ctx)
}

func TestStore_TransactionIsolationPerOperation(t *testing.T) {
	ctx := context.Background()
	tx := &recordingTx{}
	s := newStore(t, memory.NewReservationRepository(), WithTransactionManager(tx))
	assert.Equal(t, []string{"DoReadOnly"}, tx.calls)

	created, err := s.Create(ctx, []*domain.Reservation{req("LOBBY", 9, "Mahasiswa1")})
	require.NoError(t, err)
	assert.Equal(t, []string{"DoReadOnly", "DoSerializable"}, tx.calls)

	_, err = s.UpdateStatusBatch(ctx, []string{created[0].ID}, domain.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"DoReadOnly", "DoSerializable", "Do"}, tx.calls)
}
