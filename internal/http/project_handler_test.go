package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/workplacehq/workplace/internal/domain"
)

func TestProjectHandlerCreate(t *testing.T) {
	t.Run("with default columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.projectService.EXPECT().CreateProject(gomock.Any(), &domain.CreateProjectRequest{
			WorkplaceID:        "wp1",
			Name:               "Launch",
			WithDefaultColumns: true,
		}).Return(&domain.Project{ID: "proj1", Name: "Launch", OwnerID: "user1"}, nil)

		body, _ := json.Marshal(domain.CreateProjectRequest{
			WorkplaceID:        "wp1",
			Name:               "Launch",
			WithDefaultColumns: true,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/projects.create", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "proj1", gjson.Get(w.Body.String(), "id").String())
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.projectService.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("name is required"))

		body := []byte(`{"workplace_id":"wp1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/projects.create", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjectHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, m, authService := setupTest(t, ctrl)

	m.projectService.EXPECT().ListProjects(gomock.Any(), "wp1").
		Return([]*domain.Project{{ID: "proj2"}, {ID: "proj1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects.list?workplace_id=wp1", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "#").Int())
}

func TestProjectHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, m, authService := setupTest(t, ctrl)

	m.projectService.EXPECT().UpdateProject(gomock.Any(), "wp1", "proj1", "Relaunch").
		Return(&domain.Project{ID: "proj1", Name: "Relaunch", OwnerID: "user1"}, nil)

	body := []byte(`{"workplace_id":"wp1","id":"proj1","name":"Relaunch"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects.update", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Relaunch", gjson.Get(w.Body.String(), "name").String())
}

func TestProjectHandlerDelete(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.projectService.EXPECT().DeleteProject(gomock.Any(), "wp1", "proj1").Return(nil)

		body := []byte(`{"workplace_id":"wp1","id":"proj1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/projects.delete", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-owner is a 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.projectService.EXPECT().DeleteProject(gomock.Any(), "wp1", "proj1").
			Return(domain.ErrUnauthorized)

		body := []byte(`{"workplace_id":"wp1","id":"proj1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/projects.delete", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user2"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
