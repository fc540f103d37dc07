package approve_group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/approval"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/logger"
)

type mockWorkflow struct {
	mock.Mock
}

func (m *mockWorkflow) ApproveGroup(ctx context.Context, ids []string) (*models.BatchResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchResult), args.Error(1)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/approvals/approve", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handlers.BatchResponse {
	t.Helper()
	var resp handlers.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandle_Complete(t *testing.T) {
	wf := &mockWorkflow{}
	wf.On("ApproveGroup", mock.Anything, []string{"a", "b"}).
		Return(&models.BatchResult{Succeeded: []string{"a", "b"}}, nil)

	w := post(NewHandler(wf, logger.NewNop()), `{"ids":["a","b"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Complete)
	assert.Equal(t, []string{"a", "b"}, resp.Succeeded)
	assert.Empty(t, resp.Failed)
	wf.AssertExpectations(t)
}

func TestHandle_PartialReport(t *testing.T) {
	wf := &mockWorkflow{}
	result := &models.BatchResult{Succeeded: []string{"a"}}
	result.Fail("b", fmt.Errorf("%w: Rejected -> Approved", reservations.ErrInvalidTransition))
	result.Fail("c", reservations.ErrReservationNotFound)
	result.Fail("d", errors.New("pq: deadlock detected"))
	wf.On("ApproveGroup", mock.Anything, []string{"a", "b", "c", "d"}).Return(result, nil)

	w := post(NewHandler(wf, logger.NewNop()), `{"ids":["a","b","c","d"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Complete)
	assert.Equal(t, []handlers.FailedItem{
		{ID: "b", Reason: msgNotPending},
		{ID: "c", Reason: msgNotFound},
		{ID: "d", Reason: msgNotChanged},
	}, resp.Failed)
	assert.NotContains(t, w.Body.String(), "deadlock")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "empty group", body: `{"ids":[]}`, err: approval.ErrEmptyGroup, status: http.StatusBadRequest},
		{name: "store failure", body: `{"ids":["a"]}`, err: errors.New("approval: internal error"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := &mockWorkflow{}
			wf.On("ApproveGroup", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := post(NewHandler(wf, logger.NewNop()), tt.body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	wf := &mockWorkflow{}

	w := post(NewHandler(wf, logger.NewNop()), `{"ids":["a"],"reason":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	wf.AssertNotCalled(t, "ApproveGroup", mock.Anything, mock.Anything)
}
