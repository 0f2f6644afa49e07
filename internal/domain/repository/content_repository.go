package repository

import (
	"context"

	"hospital-portal/internal/domain/entity"

	"github.com/google/uuid"
)

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error)
	FindAll(ctx context.Context, filter *entity.ContentFilter, page entity.Pagination) ([]entity.Content, int64, error)
	FindPublished(ctx context.Context, contentType entity.ContentType, limit int) ([]entity.Content, error)
	FindPublishedByID(ctx context.Context, id uuid.UUID) (*entity.Content, error)
	FindRelatedPublished(ctx context.Context, contentType entity.ContentType, excludeID uuid.UUID, limit int) ([]entity.Content, error)
	CountByType(ctx context.Context) (map[entity.ContentType]int64, error)
	Update(ctx context.Context, content *entity.Content) error
	UpdateImages(ctx context.Context, id uuid.UUID, images []entity.ImageRef) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
