package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/workplacehq/workplace/internal/domain"
)

func TestTaskHandlerGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, m, authService := setupTest(t, ctrl)

	detail := &domain.TaskDetail{
		Task:      domain.Task{ID: "task1", Name: "First", ColumnID: "col1"},
		Assignees: []*domain.User{{ID: "user2", Email: "bob@example.com"}},
		Comments:  []*domain.Comment{{ID: "comment1", TaskID: "task1", UserID: "user2", Description: "Looks good"}},
		Timesheets: []*domain.Timesheet{
			{ID: "ts1", TaskID: "task1", UserID: "user2", StartTime: time.Now().Add(-time.Hour)},
		},
	}
	m.taskService.EXPECT().GetTaskDetail(gomock.Any(), "wp1", "task1").Return(detail, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks.get?workplace_id=wp1&id=task1", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "task1", gjson.Get(w.Body.String(), "task.id").String())
	assert.Equal(t, "bob@example.com", gjson.Get(w.Body.String(), "assignees.0.email").String())
	assert.Equal(t, "Looks good", gjson.Get(w.Body.String(), "comments.0.description").String())
}

func TestTaskHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, m, authService := setupTest(t, ctrl)

	m.taskService.EXPECT().UpdateTask(gomock.Any(), &domain.UpdateTaskRequest{
		WorkplaceID: "wp1",
		TaskID:      "task1",
		Name:        "Renamed",
		Content:     "Details",
	}).Return(nil)

	body := []byte(`{"workplace_id":"wp1","task_id":"task1","name":"Renamed","content":"Details"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks.update", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandlerAssignUnassign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, m, authService := setupTest(t, ctrl)

	m.taskService.EXPECT().AssignTask(gomock.Any(), "wp1", "task1", "user2").Return(nil)
	m.taskService.EXPECT().UnassignTask(gomock.Any(), "wp1", "task1", "user2").Return(nil)

	body := []byte(`{"workplace_id":"wp1","task_id":"task1","user_id":"user2"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks.assign", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/tasks.unassign", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandlerComments(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.taskService.EXPECT().CreateComment(gomock.Any(), "wp1", "task1", "Looks good").
			Return(&domain.Comment{ID: "comment1", TaskID: "task1", UserID: "user1", Description: "Looks good"}, nil)

		body := []byte(`{"workplace_id":"wp1","task_id":"task1","description":"Looks good"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/comments.create", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "comment1", gjson.Get(w.Body.String(), "id").String())
	})

	t.Run("delete by someone else is a 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.taskService.EXPECT().DeleteComment(gomock.Any(), "wp1", "comment1").
			Return(domain.ErrUnauthorized)

		body := []byte(`{"workplace_id":"wp1","comment_id":"comment1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/comments.delete", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user2"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestTaskHandlerTimesheets(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.taskService.EXPECT().StartTimesheet(gomock.Any(), "wp1", "task1").
			Return(&domain.Timesheet{ID: "ts1", TaskID: "task1", UserID: "user1", StartTime: time.Now()}, nil)

		body := []byte(`{"workplace_id":"wp1","task_id":"task1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/timesheets.start", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "ts1", gjson.Get(w.Body.String(), "id").String())
	})

	t.Run("stop with description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		description := "reviewed designs"
		stopTime := time.Now()
		m.taskService.EXPECT().StopTimesheet(gomock.Any(), "wp1", &description).
			Return(&domain.Timesheet{ID: "ts1", StopTime: &stopTime, Description: &description}, nil)

		body := []byte(`{"workplace_id":"wp1","description":"reviewed designs"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/timesheets.stop", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reviewed designs", gjson.Get(w.Body.String(), "description").String())
	})

	t.Run("stop with nothing open is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.taskService.EXPECT().StopTimesheet(gomock.Any(), "wp1", nil).
			Return(nil, &domain.ErrTimesheetNotFound{Message: "no open timesheet"})

		body := []byte(`{"workplace_id":"wp1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/timesheets.stop", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mux, m, authService := setupTest(t, ctrl)

		m.taskService.EXPECT().ListTimesheets(gomock.Any(), "wp1", "task1").
			Return([]*domain.Timesheet{{ID: "ts2"}, {ID: "ts1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/timesheets.list?workplace_id=wp1&task_id=task1", nil)
		req.Header.Set("Authorization", "Bearer "+testToken(authService, "user1"))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "#").Int())
	})
}
