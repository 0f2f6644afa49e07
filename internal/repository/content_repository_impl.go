package repository

import (
	"context"
	"errors"

	"hospital-portal/internal/domain/entity"
	domainRepo "hospital-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) domainRepo.ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	var content entity.Content
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// FindAll lists contents newest first. Supports optional filters: title
// search (ILIKE) and exact type.
func (r *contentRepository) FindAll(ctx context.Context, filter *entity.ContentFilter, page entity.Pagination) ([]entity.Content, int64, error) {
	var contents []entity.Content
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Content{}).Scopes(contentFilterScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	err := r.db.WithContext(ctx).
		Scopes(contentFilterScope(filter)).
		Order("created_at DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&contents).Error
	if err != nil {
		return nil, 0, err
	}

	return contents, total, nil
}

func contentFilterScope(filter *entity.ContentFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if filter.Search != "" {
			db = db.Where("title ILIKE ?", likePattern(filter.Search))
		}
		if filter.Type != "" {
			db = db.Where("type = ?", filter.Type)
		}
		return db
	}
}

// FindPublished returns published contents newest first. An empty type
// matches every type and a non-positive limit means no limit.
func (r *contentRepository) FindPublished(ctx context.Context, contentType entity.ContentType, limit int) ([]entity.Content, error) {
	var contents []entity.Content
	query := r.db.WithContext(ctx).Where("is_published = ?", true)
	if contentType != "" {
		query = query.Where("type = ?", contentType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("created_at DESC").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) FindPublishedByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	var content entity.Content
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", id, true).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) FindRelatedPublished(ctx context.Context, contentType entity.ContentType, excludeID uuid.UUID, limit int) ([]entity.Content, error) {
	var contents []entity.Content
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND type = ? AND id <> ?", true, contentType, excludeID).
		Order("RANDOM()").
		Limit(limit).
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) CountByType(ctx context.Context) (map[entity.ContentType]int64, error) {
	var rows []struct {
		Type  entity.ContentType
		Total int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Content{}).
		Select("type, COUNT(*) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.ContentType]int64, len(entity.ContentTypes))
	for _, contentType := range entity.ContentTypes {
		counts[contentType] = 0
	}
	for _, row := range rows {
		counts[row.Type] = row.Total
	}
	return counts, nil
}

func (r *contentRepository) Update(ctx context.Context, content *entity.Content) error {
	return r.db.WithContext(ctx).Save(content).Error
}

func (r *contentRepository) UpdateImages(ctx context.Context, id uuid.UUID, images []entity.ImageRef) error {
	return r.db.WithContext(ctx).
		Model(&entity.Content{}).
		Where("id = ?", id).
		Update("images", datatypes.JSONSlice[entity.ImageRef](images)).Error
}

// Delete soft-deletes the row; it stays in the table with deleted_at set.
func (r *contentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	affected := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Content{})
	return affected.RowsAffected, affected.Error
}
