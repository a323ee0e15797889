package get_free_time

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/service/freetime"
	"github.com/m04kA/SMC-SchedulingService/internal/service/freetime/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	resp *models.FreeTimeResponse
	err  error
}

func (f *fakeService) Get(_ context.Context, _ int64) (*models.FreeTimeResponse, error) {
	return f.resp, f.err
}

func newRequest(memberID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+memberID+"/free-time", nil)
	return mux.SetURLVars(req, map[string]string{"userId": memberID})
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.FreeTimeResponse{
		MemberID: 4,
		Days: map[string][]models.IntervalResponse{
			"monday": {{Start: "09:00", End: "11:00"}},
		},
	}}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("4"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FreeTimeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(4), resp.MemberID)
	assert.Equal(t, "11:00", resp.Days["monday"][0].End)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		memberID string
		err      error
		status   int
	}{
		{"bad id", "four", nil, http.StatusBadRequest},
		{"zero id", "0", nil, http.StatusBadRequest},
		{"not found", "4", freetime.ErrFreeTimeNotFound, http.StatusNotFound},
		{"internal", "4", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.memberID))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
