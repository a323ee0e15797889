package get_project_settings

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

	"github.com/m04kA/SMC-SchedulingService/internal/service/settings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/settings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Get(_ context.Context, projectID int64) (*models.SettingsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return models.DefaultSettings(projectID, 30), nil
}

func newRequest(projectID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID+"/settings", nil)
	return mux.SetURLVars(req, map[string]string{"projectId": projectID})
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("12"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SettingsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(12), resp.ProjectID)
	assert.Equal(t, 30, resp.DefaultMinDurationMinutes)
	assert.True(t, resp.IsDefault)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		err       error
		status    int
	}{
		{"bad id", "p", nil, http.StatusBadRequest},
		{"not found", "12", settings.ErrProjectNotFound, http.StatusNotFound},
		{"internal", "12", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.projectID))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
