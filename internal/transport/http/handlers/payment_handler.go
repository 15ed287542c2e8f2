package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smediamanagement84-star/ModelApp/internal/services/discovery"
	"github.com/smediamanagement84-star/ModelApp/internal/services/payments"
	"github.com/smediamanagement84-star/ModelApp/internal/transport/http/dto"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

type PaymentHandler struct {
	svc   *payments.Service
	views *discovery.Service
}

func NewPaymentHandler(svc *payments.Service, views *discovery.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc, views: views}
}

func (h *PaymentHandler) Begin(w http.ResponseWriter, r *http.Request) {
	var req dto.BeginPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	attempt, err := h.svc.Begin(r.Context(), viewerID(r), req.TalentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusCreated, attempt)
}

func (h *PaymentHandler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectMethodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	attempt, err := h.svc.SelectMethod(r.Context(), viewerID(r), chi.URLParam(r, "id"), payments.Method(req.Method))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, attempt)
}

func (h *PaymentHandler) EnterCredentials(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	attempt, err := h.svc.EnterCredentials(r.Context(), viewerID(r), chi.URLParam(r, "id"), req.WalletID, req.PIN)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, attempt)
}

func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.svc.Submit(r.Context(), viewerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if attempt.State == payments.StateSuccess && h.views != nil {
		h.views.OnUnlock(r.Context(), attempt.ViewerID, attempt.TalentID)
	}

	httperrors.WriteJSON(w, http.StatusOK, attempt)
}

func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context(), viewerID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.svc.Get(r.Context(), viewerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, attempt)
}
