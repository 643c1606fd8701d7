package http

import (
	"io"
	"net/http"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/http/middleware"
	"github.com/workplacehq/workplace/pkg/logger"
)

// BoardHandler serves the merged board view and accepts board mutations.
// Mutations arrive as a {kind, token, payload} envelope addressed to a board
// by the workplace_id and project_id query parameters.
type BoardHandler struct {
	boardService   domain.BoardServiceInterface
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Logger
}

func NewBoardHandler(
	boardService domain.BoardServiceInterface,
	authMiddleware *middleware.AuthMiddleware,
	logger logger.Logger,
) *BoardHandler {
	return &BoardHandler{
		boardService:   boardService,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *BoardHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.authMiddleware.RequireAuth()

	mux.Handle("/api/board.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/board.mutate", requireAuth(http.HandlerFunc(h.handleMutate)))
}

func (h *BoardHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	projectID := r.URL.Query().Get("project_id")
	if workplaceID == "" || projectID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace or project ID")
		return
	}

	board, err := h.boardService.GetBoard(r.Context(), workplaceID, projectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) handleMutate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workplaceID := r.URL.Query().Get("workplace_id")
	projectID := r.URL.Query().Get("project_id")
	if workplaceID == "" || projectID == "" {
		writeError(w, http.StatusBadRequest, "Missing workplace or project ID")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	mutation, err := domain.DecodeBoardMutation(body)
	if err != nil {
		// Unknown kinds and malformed payloads are client errors, never
		// silently dropped.
		writeServiceError(w, err)
		return
	}

	if err := h.boardService.ApplyMutation(r.Context(), workplaceID, projectID, mutation); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "applied",
		"token":  mutation.Token(),
	})
}
