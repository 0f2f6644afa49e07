package handler

import (
	"net/http"
	"time"

	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	log              *logrus.Logger
	now              func() time.Time
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		log:              log,
		now:              time.Now,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.Get(r.Context(), h.now())
	if err != nil {
		writeError(w, h.log, err, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
