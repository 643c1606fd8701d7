package http

import (
	"encoding/json"
	"net/http"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/http/middleware"
	"github.com/workplacehq/workplace/pkg/logger"
)

// TaskHandler handles task detail, comment and timesheet operations
type TaskHandler struct {
	taskService    domain.TaskServiceInterface
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewTaskHandler(
	taskService domain.TaskServiceInterface,
	authMiddleware *middleware.AuthMiddleware,
	logger logger.Logger,
) *TaskHandler {
	return &TaskHandler{
		taskService:    taskService,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

type assignTaskRequest struct {
	WorkplaceID string `json:"workplace_id"`
	TaskID      string `json:"task_id"`
	UserID      string `json:"user_id"`
}

type createCommentRequest struct {
	WorkplaceID string `json:"workplace_id"`
	TaskID      string `json:"task_id"`
	Description string `json:"description"`
}

type deleteCommentRequest struct {
	WorkplaceID string `json:"workplace_id"`
	CommentID   string `json:"comment_id"`
}

type startTimesheetRequest struct {
	WorkplaceID string `json:"workplace_id"`
	TaskID      string `json:"task_id"`
}

type stopTimesheetRequest struct {
	WorkplaceID string  `json:"workplace_id"`
	Description *string `json:"description,omitempty"`
}

func (h *TaskHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/tasks.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/tasks.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/tasks.assign", requireAuth(http.HandlerFunc(h.handleAssign)))
	mux.Handle("/api/tasks.unassign", requireAuth(http.HandlerFunc(h.handleUnassign)))
	mux.Handle("/api/comments.create", requireAuth(http.HandlerFunc(h.handleCreateComment)))
	mux.Handle("/api/comments.delete", requireAuth(http.HandlerFunc(h.handleDeleteComment)))
	mux.Handle("/api/timesheets.start", requireAuth(http.HandlerFunc(h.handleStartTimesheet)))
	mux.Handle("/api/timesheets.stop", requireAuth(http.HandlerFunc(h.handleStopTimesheet)))
	mux.Handle("/api/timesheets.list", requireAuth(http.HandlerFunc(h.handleListTimesheets)))
}

// handleGet returns the task with its assignees, comments and timesheets
func (h *TaskHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	taskID := r.URL.Query().Get("id")
	if workplaceID == "" || taskID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace or task ID")
		return
	}

	detail, err := h.taskService.GetTaskDetail(r.Context(), workplaceID, taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *TaskHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.taskService.UpdateTask(r.Context(), &req); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *TaskHandler) handleAssign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req assignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.taskService.AssignTask(r.Context(), req.WorkplaceID, req.TaskID, req.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "assigned"})
}

func (h *TaskHandler) handleUnassign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req assignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.taskService.UnassignTask(r.Context(), req.WorkplaceID, req.TaskID, req.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unassigned"})
}

func (h *TaskHandler) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.taskService.CreateComment(r.Context(), req.WorkplaceID, req.TaskID, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *TaskHandler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req deleteCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.taskService.DeleteComment(r.Context(), req.WorkplaceID, req.CommentID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *TaskHandler) handleStartTimesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req startTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	timesheet, err := h.taskService.StartTimesheet(r.Context(), req.WorkplaceID, req.TaskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, timesheet)
}

func (h *TaskHandler) handleStopTimesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req stopTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	timesheet, err := h.taskService.StopTimesheet(r.Context(), req.WorkplaceID, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, timesheet)
}

func (h *TaskHandler) handleListTimesheets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	taskID := r.URL.Query().Get("task_id")
	if workplaceID == "" || taskID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace or task ID")
		return
	}

	timesheets, err := h.taskService.ListTimesheets(r.Context(), workplaceID, taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, timesheets)
}
