package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateContentRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Body        string `json:"body" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=rules map handwash education other"`
	IsPublished *bool  `json:"is_published"`
}

// UpdateContentRequest replaces every editable field. A missing
// is_published unpublishes the item.
type UpdateContentRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Body        string `json:"body" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=rules map handwash education other"`
	IsPublished *bool  `json:"is_published"`
	// DeletedImages lists gallery paths to remove, used by the JSON form of
	// the endpoint. Multipart requests send them as deleted_images fields.
	DeletedImages []string `json:"deleted_images"`
}

type UpdateContentImagesRequest struct {
	DeletedImages []string `json:"deleted_images"`
}

type ContentListRequest struct {
	PageRequest
	Search string `json:"search" validate:"omitempty,max=255"`
	Type   string `json:"type" validate:"omitempty,oneof=rules map handwash education other"`
}

// Response DTOs

type ImageResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type ContentResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Type        string          `json:"type"`
	TypeLabel   string          `json:"type_label"`
	IsPublished bool            `json:"is_published"`
	Images      []ImageResponse `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ContentListResponse struct {
	Contents []ContentResponse `json:"contents"`
	PageInfo PageInfo          `json:"page_info"`
}

type ContentTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
