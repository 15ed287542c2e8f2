package handlers

import (
	"net/http"

	"github.com/smediamanagement84-star/ModelApp/internal/services/auth"
	"github.com/smediamanagement84-star/ModelApp/internal/transport/http/dto"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, dto.LoginResponse{
		AccessToken: res.AccessToken,
		ViewerID:    res.ViewerID,
		Role:        res.Role,
		ExpiresAt:   res.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httperrors.Write(w, http.StatusUnauthorized, "unauthenticated", "sign in to continue")
		return
	}

	if err := h.svc.Logout(r.Context(), id.SID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
