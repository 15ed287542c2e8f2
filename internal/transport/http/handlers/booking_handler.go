package handlers

import (
	"net/http"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/services/bookings"
	"github.com/smediamanagement84-star/ModelApp/internal/transport/http/dto"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

type BookingHandler struct {
	svc *bookings.Service
}

func NewBookingHandler(svc *bookings.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.svc.Create(r.Context(), viewerID(r), bookings.CreateInput{
		TalentID:     req.TalentID,
		ProjectName:  req.ProjectName,
		Description:  req.Description,
		ShootDate:    req.ShootDate,
		DurationDays: req.DurationDays,
		Budget:       req.Budget,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context(), viewerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.BookingRequest{}
	}

	httperrors.WriteJSON(w, http.StatusOK, records)
}
