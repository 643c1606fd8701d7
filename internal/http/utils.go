package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service-layer error onto an HTTP status code
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr domain.ValidationError
	var unknownKind *domain.ErrUnknownMutationKind

	switch {
	case errors.As(err, &validationErr), errors.As(err, &unknownKind):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvitationExpired),
		errors.Is(err, service.ErrOwnerCannotLeave):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInvalidMagicCode):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, service.ErrNotWorkplaceOwner),
		errors.Is(err, service.ErrInvitationMismatch):
		writeError(w, http.StatusForbidden, err.Error())
	case isNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func isNotFound(err error) bool {
	var (
		notFound           *domain.ErrNotFound
		userNotFound       *domain.ErrUserNotFound
		sessionNotFound    *domain.ErrSessionNotFound
		workplaceNotFound  *domain.ErrWorkplaceNotFound
		invitationNotFound *domain.ErrInvitationNotFound
		projectNotFound    *domain.ErrProjectNotFound
		columnNotFound     *domain.ErrColumnNotFound
		taskNotFound       *domain.ErrTaskNotFound
		commentNotFound    *domain.ErrCommentNotFound
		timesheetNotFound  *domain.ErrTimesheetNotFound
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &userNotFound) ||
		errors.As(err, &sessionNotFound) ||
		errors.As(err, &workplaceNotFound) ||
		errors.As(err, &invitationNotFound) ||
		errors.As(err, &projectNotFound) ||
		errors.As(err, &columnNotFound) ||
		errors.As(err, &taskNotFound) ||
		errors.As(err, &commentNotFound) ||
		errors.As(err, &timesheetNotFound)
}
