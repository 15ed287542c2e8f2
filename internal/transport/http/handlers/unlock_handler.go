package handlers

import (
	"net/http"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/services/unlocks"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

type UnlockHandler struct {
	svc *unlocks.Service
}

func NewUnlockHandler(svc *unlocks.Service) *UnlockHandler {
	return &UnlockHandler{svc: svc}
}

func (h *UnlockHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context(), viewerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.UnlockRecord{}
	}

	httperrors.WriteJSON(w, http.StatusOK, records)
}
