package http

import (
	"encoding/json"
	"net/http"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/http/middleware"
	"github.com/workplacehq/workplace/pkg/logger"
)

// WorkplaceHandler handles HTTP requests for workplace operations
type WorkplaceHandler struct {
	workplaceService domain.WorkplaceServiceInterface
	authMiddleware   *middleware.AuthMiddleware
	logger           logger.Logger
}

func NewWorkplaceHandler(
	workplaceService domain.WorkplaceServiceInterface,
	authMiddleware *middleware.AuthMiddleware,
	logger logger.Logger,
) *WorkplaceHandler {
	return &WorkplaceHandler{
		workplaceService: workplaceService,
		authMiddleware:   authMiddleware,
		logger:           logger,
	}
}

type leaveWorkplaceRequest struct {
	WorkplaceID string `json:"workplace_id"`
}

type acceptInvitationRequest struct {
	InvitationID string `json:"invitation_id"`
}

type removeMemberRequest struct {
	WorkplaceID string `json:"workplace_id"`
	UserID      string `json:"user_id"`
}

// RegisterRoutes registers all workplace RPC-style routes with authentication middleware
func (h *WorkplaceHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/workplaces.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/workplaces.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/workplaces.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/workplaces.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/workplaces.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/workplaces.leave", requireAuth(http.HandlerFunc(h.handleLeave)))
	mux.Handle("/api/workplaces.members", requireAuth(http.HandlerFunc(h.handleMembers)))
	mux.Handle("/api/workplaces.inviteMember", requireAuth(http.HandlerFunc(h.handleInviteMember)))
	mux.Handle("/api/workplaces.acceptInvitation", requireAuth(http.HandlerFunc(h.handleAcceptInvitation)))
	mux.Handle("/api/workplaces.removeMember", requireAuth(http.HandlerFunc(h.handleRemoveMember)))
}

func (h *WorkplaceHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaces, err := h.workplaceService.ListWorkplaces(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workplaces)
}

func (h *WorkplaceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("id")
	if workplaceID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace ID")
		return
	}

	workplace, err := h.workplaceService.GetWorkplace(r.Context(), workplaceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workplace)
}

func (h *WorkplaceHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.CreateWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	workplace, err := h.workplaceService.CreateWorkplace(r.Context(), req.ID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, workplace)
}

func (h *WorkplaceHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.UpdateWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	workplace, err := h.workplaceService.UpdateWorkplace(r.Context(), req.ID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workplace)
}

func (h *WorkplaceHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.DeleteWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.workplaceService.DeleteWorkplace(r.Context(), req.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *WorkplaceHandler) handleLeave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req leaveWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.workplaceService.LeaveWorkplace(r.Context(), req.WorkplaceID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func (h *WorkplaceHandler) handleMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	if workplaceID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace ID")
		return
	}

	members, err := h.workplaceService.GetMembers(r.Context(), workplaceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *WorkplaceHandler) handleInviteMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invitation, err := h.workplaceService.InviteMember(r.Context(), req.WorkplaceID, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, invitation)
}

func (h *WorkplaceHandler) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req acceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.InvitationID == "" {
		writeError(w, http.StatusBadRequest, "Missing invitation ID")
		return
	}

	if err := h.workplaceService.AcceptInvitation(r.Context(), req.InvitationID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

func (h *WorkplaceHandler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req removeMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.workplaceService.RemoveMember(r.Context(), req.WorkplaceID, req.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
