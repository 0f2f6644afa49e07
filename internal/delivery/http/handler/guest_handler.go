package handler

import (
	"net/http"
	"time"

	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

// GuestHandler serves the public, unauthenticated pages.
type GuestHandler struct {
	guestUsecase usecase.GuestUsecase
	log          *logrus.Logger
	now          func() time.Time
}

func NewGuestHandler(guestUsecase usecase.GuestUsecase, log *logrus.Logger) *GuestHandler {
	return &GuestHandler{
		guestUsecase: guestUsecase,
		log:          log,
		now:          time.Now,
	}
}

func (h *GuestHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.guestUsecase.Home(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to load home page")
		return
	}

	response.Success(w, http.StatusOK, "Home retrieved successfully", home)
}

func (h *GuestHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.guestUsecase.Doctors(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *GuestHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	doctor, err := h.guestUsecase.Doctor(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *GuestHandler) TodayDoctors(w http.ResponseWriter, r *http.Request) {
	today, err := h.guestUsecase.Today(r.Context(), h.now())
	if err != nil {
		writeError(w, h.log, err, "Failed to get today's doctors")
		return
	}

	response.Success(w, http.StatusOK, "Today's doctors retrieved successfully", today)
}

func (h *GuestHandler) ListEducation(w http.ResponseWriter, r *http.Request) {
	education, err := h.guestUsecase.Education(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get articles")
		return
	}

	response.Success(w, http.StatusOK, "Articles retrieved successfully", education)
}

func (h *GuestHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	article, err := h.guestUsecase.Article(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get article")
		return
	}

	response.Success(w, http.StatusOK, "Article retrieved successfully", article)
}

func (h *GuestHandler) GetVisitingHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.guestUsecase.VisitingHours(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get visiting hours")
		return
	}

	response.Success(w, http.StatusOK, "Visiting hours retrieved successfully", hours)
}
