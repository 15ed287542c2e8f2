package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smediamanagement84-star/ModelApp/internal/repo/postgres"
	"github.com/smediamanagement84-star/ModelApp/internal/services/auth"
	"github.com/smediamanagement84-star/ModelApp/internal/services/bookings"
	"github.com/smediamanagement84-star/ModelApp/internal/services/payments"
	"github.com/smediamanagement84-star/ModelApp/internal/services/unlocks"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httperrors.Write(w, http.StatusBadRequest, "bad_request", "malformed json body")
		return false
	}
	return true
}

// viewerID returns the authenticated viewer, or "" for anonymous
// requests.
func viewerID(r *http.Request) string {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return ""
	}
	return id.ViewerID
}

// writeServiceError maps the service sentinels onto HTTP statuses.
// Anything unrecognized is a 500 with no detail leaked.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, unlocks.ErrUnauthenticated):
		httperrors.Write(w, http.StatusUnauthorized, "unauthenticated", "sign in to continue")
	case errors.Is(err, auth.ErrValidation),
		errors.Is(err, payments.ErrValidation),
		errors.Is(err, bookings.ErrValidation):
		httperrors.Write(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrNoSession):
		httperrors.Write(w, http.StatusUnauthorized, "invalid_token", "invalid or expired session")
	case errors.Is(err, postgres.ErrTalentNotFound):
		httperrors.Write(w, http.StatusNotFound, "talent_not_found", "talent not found")
	case errors.Is(err, payments.ErrAttemptNotFound):
		httperrors.Write(w, http.StatusNotFound, "attempt_not_found", "payment attempt not found")
	case errors.Is(err, payments.ErrForbidden):
		httperrors.Write(w, http.StatusForbidden, "forbidden", "payment attempt belongs to another viewer")
	case errors.Is(err, payments.ErrAlreadyUnlocked):
		httperrors.Write(w, http.StatusConflict, "already_unlocked", "talent is already unlocked")
	case errors.Is(err, payments.ErrInvalidTransition):
		httperrors.Write(w, http.StatusConflict, "invalid_state", err.Error())
	case errors.Is(err, payments.ErrProcessing):
		httperrors.Write(w, http.StatusConflict, "processing", "payment attempt is processing")
	case errors.Is(err, bookings.ErrLocked):
		httperrors.Write(w, http.StatusForbidden, "talent_locked", "unlock the talent before booking")
	default:
		httperrors.Write(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
