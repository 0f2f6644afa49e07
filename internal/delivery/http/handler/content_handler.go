package handler

import (
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
	uploads        *UploadPolicy
	log            *logrus.Logger
}

func NewContentHandler(contentUsecase usecase.ContentUsecase, uploads *UploadPolicy, log *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		contentUsecase: contentUsecase,
		uploads:        uploads,
		log:            log,
	}
}

func (h *ContentHandler) ListContents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.ContentListRequest{
		PageRequest: dto.PageRequest{Page: queryInt(r, "page"), PageSize: queryInt(r, "page_size")},
		Search:      query.Get("search"),
		Type:        query.Get("type"),
	}

	list, err := h.contentUsecase.List(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to get contents")
		return
	}

	meta := response.NewMeta(list.PageInfo.Page, list.PageInfo.PageSize, list.PageInfo.Total)
	response.SuccessWithMeta(w, http.StatusOK, "Contents retrieved successfully", list.Contents, meta)
}

func (h *ContentHandler) GetContentTypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Content types retrieved successfully", h.contentUsecase.ContentTypes())
}

func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	content, err := h.contentUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err, "Failed to get content")
		return
	}

	response.Success(w, http.StatusOK, "Content retrieved successfully", content)
}

func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContentRequest
	form, err := h.uploads.Parse(w, r, &req, "images")
	if err != nil {
		writeError(w, h.log, err, "Failed to create content")
		return
	}
	defer form.Close()

	content, err := h.contentUsecase.Create(r.Context(), &req, form.Files["images"])
	if err != nil {
		writeError(w, h.log, err, "Failed to create content")
		return
	}

	response.Success(w, http.StatusCreated, "Content created successfully", content)
}

// UpdateContent replaces the content fields. Multipart requests may also add
// images under "new_images" and remove paths listed in "deleted_images".
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	var req dto.UpdateContentRequest
	form, err := h.uploads.Parse(w, r, &req, "new_images")
	if err != nil {
		writeError(w, h.log, err, "Failed to update content")
		return
	}
	defer form.Close()
	req.DeletedImages = append(req.DeletedImages, form.DeletedImages...)

	content, err := h.contentUsecase.Update(r.Context(), id, &req, form.Files["new_images"])
	if err != nil {
		writeError(w, h.log, err, "Failed to update content")
		return
	}

	response.Success(w, http.StatusOK, "Content updated successfully", content)
}

func (h *ContentHandler) UpdateContentImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	var req dto.UpdateContentImagesRequest
	form, err := h.uploads.Parse(w, r, &req, "new_images", "images")
	if err != nil {
		writeError(w, h.log, err, "Failed to update content images")
		return
	}
	defer form.Close()

	files := append(form.Files["new_images"], form.Files["images"]...)
	deleted := append(req.DeletedImages, form.DeletedImages...)

	content, err := h.contentUsecase.UpdateImages(r.Context(), id, files, deleted)
	if err != nil {
		writeError(w, h.log, err, "Failed to update content images")
		return
	}

	response.Success(w, http.StatusOK, "Content images updated successfully", content)
}

func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if err := h.contentUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err, "Failed to delete content")
		return
	}

	response.Success(w, http.StatusOK, "Content deleted successfully", nil)
}
