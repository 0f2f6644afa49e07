package handler

import (
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/apperror"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	uploads       *UploadPolicy
	log           *logrus.Logger
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, uploads *UploadPolicy, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		uploads:       uploads,
		log:           log,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	req := dto.DoctorListRequest{
		PageRequest: dto.PageRequest{Page: queryInt(r, "page"), PageSize: queryInt(r, "page_size")},
		Search:      r.URL.Query().Get("search"),
	}

	list, err := h.doctorUsecase.List(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to get doctors")
		return
	}

	meta := response.NewMeta(list.PageInfo.Page, list.PageInfo.PageSize, list.PageInfo.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", list.Doctors, meta)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	form, err := h.uploads.Parse(w, r, &req, "photo")
	if err != nil {
		writeError(w, h.log, err, "Failed to create doctor")
		return
	}
	defer form.Close()

	doctor, err := h.doctorUsecase.Create(r.Context(), &req, form.File("photo"))
	if err != nil {
		writeError(w, h.log, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// UpdateDoctor replaces the profile. A multipart request carrying a "photo"
// replaces the photo in the same update.
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	var req dto.UpdateDoctorRequest
	form, err := h.uploads.Parse(w, r, &req, "photo")
	if err != nil {
		writeError(w, h.log, err, "Failed to update doctor")
		return
	}
	defer form.Close()

	doctor, err := h.doctorUsecase.Update(r.Context(), id, &req, form.File("photo"))
	if err != nil {
		writeError(w, h.log, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctorPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if !isMultipart(r) {
		response.Error(w, http.StatusBadRequest, "Photo must be sent as multipart/form-data", nil)
		return
	}

	var ignored struct{}
	form, err := h.uploads.Parse(w, r, &ignored, "photo")
	if err != nil {
		writeError(w, h.log, err, "Failed to update doctor photo")
		return
	}
	defer form.Close()

	photo := form.File("photo")
	if photo == nil {
		writeError(w, h.log, apperror.NewValidationError("photo", "photo is required"), "")
		return
	}

	doctor, err := h.doctorUsecase.UpdatePhoto(r.Context(), id, *photo)
	if err != nil {
		writeError(w, h.log, err, "Failed to update doctor photo")
		return
	}

	response.Success(w, http.StatusOK, "Doctor photo updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err, "Failed to delete doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}
