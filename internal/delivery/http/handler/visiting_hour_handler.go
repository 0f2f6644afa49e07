package handler

import (
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type VisitingHourHandler struct {
	visitingHourUsecase usecase.VisitingHourUsecase
	log                 *logrus.Logger
}

func NewVisitingHourHandler(visitingHourUsecase usecase.VisitingHourUsecase, log *logrus.Logger) *VisitingHourHandler {
	return &VisitingHourHandler{
		visitingHourUsecase: visitingHourUsecase,
		log:                 log,
	}
}

func (h *VisitingHourHandler) GetVisitingHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.visitingHourUsecase.Get(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get visiting hours")
		return
	}

	response.Success(w, http.StatusOK, "Visiting hours retrieved successfully", hours)
}

func (h *VisitingHourHandler) UpdateVisitingHours(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateVisitingHourRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	hours, err := h.visitingHourUsecase.Update(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update visiting hours")
		return
	}

	response.Success(w, http.StatusOK, "Visiting hours updated successfully", hours)
}
