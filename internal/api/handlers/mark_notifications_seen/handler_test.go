package mark_notifications_seen

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) MarkSeen(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func post(h *Handler, path string, user *domain.User) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/users/{username}/notifications/seen", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkSeen", mock.Anything, "Mahasiswa1").Return(nil)

	w := post(NewHandler(svc, logger.NewNop()), "/users/Mahasiswa1/notifications/seen",
		&domain.User{Username: "Mahasiswa1", Role: domain.RoleStudent})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_OnlyOwnCounters(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	assert.Equal(t, http.StatusUnauthorized, post(h, "/users/Mahasiswa1/notifications/seen", nil).Code)
	assert.Equal(t, http.StatusForbidden, post(h, "/users/Mahasiswa1/notifications/seen",
		&domain.User{Username: "Mahasiswa2", Role: domain.RoleStudent}).Code)

	svc.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
}

func TestHandle_StoreFailure(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkSeen", mock.Anything, "Mahasiswa1").Return(errors.New("redis: i/o timeout"))

	w := post(NewHandler(svc, logger.NewNop()), "/users/Mahasiswa1/notifications/seen",
		&domain.User{Username: "Mahasiswa1", Role: domain.RoleStudent})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
