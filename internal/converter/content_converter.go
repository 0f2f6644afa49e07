package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// URLResolver turns a storage path into a public URL. storage.Disk
// satisfies it.
type URLResolver interface {
	URL(path string) string
}

// ImagesToResponses re-derives every URL from its path so stored URLs never
// go stale when the disk or its public address changes.
func ImagesToResponses(images []entity.ImageRef, urls URLResolver) []dto.ImageResponse {
	responses := make([]dto.ImageResponse, len(images))
	for i, image := range images {
		responses[i] = dto.ImageResponse{
			ID:   image.ID,
			Path: image.Path,
			URL:  urls.URL(image.Path),
		}
	}
	return responses
}

// ImageURLs returns the public URL of each image in gallery order.
func ImageURLs(images []entity.ImageRef, urls URLResolver) []string {
	out := make([]string, len(images))
	for i, image := range images {
		out[i] = urls.URL(image.Path)
	}
	return out
}

// ContentToResponse converts a Content entity to ContentResponse DTO
func ContentToResponse(content *entity.Content, urls URLResolver) *dto.ContentResponse {
	if content == nil {
		return nil
	}

	return &dto.ContentResponse{
		ID:          content.ID,
		Title:       content.Title,
		Body:        content.Body,
		Type:        string(content.Type),
		TypeLabel:   content.Type.Label(),
		IsPublished: content.IsPublished,
		Images:      ImagesToResponses(content.Images, urls),
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
	}
}

func ContentsToResponses(contents []entity.Content, urls URLResolver) []dto.ContentResponse {
	responses := make([]dto.ContentResponse, len(contents))
	for i := range contents {
		responses[i] = *ContentToResponse(&contents[i], urls)
	}
	return responses
}

// ContentTypeOptions lists every content type with its display label.
func ContentTypeOptions() []dto.ContentTypeOption {
	options := make([]dto.ContentTypeOption, len(entity.ContentTypes))
	for i, t := range entity.ContentTypes {
		options[i] = dto.ContentTypeOption{Value: string(t), Label: t.Label()}
	}
	return options
}
