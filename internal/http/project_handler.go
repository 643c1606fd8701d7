package http

import (
	"encoding/json"
	"net/http"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/http/middleware"
	"github.com/workplacehq/workplace/pkg/logger"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService domain.ProjectServiceInterface
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewProjectHandler(
	projectService domain.ProjectServiceInterface,
	authMiddleware *middleware.AuthMiddleware,
	logger logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

type updateProjectRequest struct {
	WorkplaceID string `json:"workplace_id"`
	ID          string `json:"id"`
	Name        string `json:"name"`
}

type deleteProjectRequest struct {
	WorkplaceID string `json:"workplace_id"`
	ID          string `json:"id"`
}

func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/projects.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/projects.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/projects.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/projects.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/projects.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *ProjectHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	if workplaceID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace ID")
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), workplaceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	projectID := r.URL.Query().Get("id")
	if workplaceID == "" || projectID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace or project ID")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), workplaceID, projectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(r.Context(), req.WorkplaceID, req.ID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req deleteProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), req.WorkplaceID, req.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
