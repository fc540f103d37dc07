package create_reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	createReservations "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/create_reservations"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/logger"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservations.Request) (*createReservations.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservations.Response), args.Error(1)
}

var student = &domain.User{Username: "Mahasiswa1", Role: domain.RoleStudent}

func post(h *Handler, user *domain.User, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

const validBody = `{"date":"2024-05-01","slots":[{"room":"R1","time":"09:00"},{"room":"R1","time":"10:00"}],"purpose":"Rapat"}`

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	created := []*domain.Reservation{
		{ID: "r1", Room: "R1", Date: date, Time: types.NewHourMark(9), Requester: "Mahasiswa1", Status: domain.StatusPending},
		{ID: "r2", Room: "R1", Date: date, Time: types.NewHourMark(10), Requester: "Mahasiswa1", Status: domain.StatusPending},
	}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createReservations.Request) bool {
		return r.User == student && r.Date.Equal(date) && len(r.Slots) == 2 && r.Purpose == "Rapat"
	})).Return(&createReservations.Response{Reservations: created}, nil)

	w := post(NewHandler(uc, logger.NewNop()), student, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp CreateReservationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "09:00", resp.Reservations[0].Time)
	assert.Equal(t, "Pending", resp.Reservations[0].Status)
	uc.AssertExpectations(t)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{createReservations.ErrSlotUnavailable, http.StatusConflict},
		{createReservations.ErrBookingNotAllowed, http.StatusForbidden},
		{createReservations.ErrPastDate, http.StatusBadRequest},
		{createReservations.ErrUnknownSlot, http.StatusBadRequest},
		{createReservations.ErrEmptySelection, http.StatusBadRequest},
		{createReservations.ErrInvalidInput, http.StatusBadRequest},
		{createReservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: details", tt.err))

			w := post(NewHandler(uc, logger.NewNop()), student, validBody)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusUnauthorized, post(h, nil, validBody).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, student, `{"date":"01.05.2024","slots":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, student, `{"date":"2024-05-01","slots":[{"room":"R1","time":"9am"}]}`).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
