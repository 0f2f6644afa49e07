package repository

import (
	"context"
	"errors"

	"hospital-portal/internal/domain/entity"
	domainRepo "hospital-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type visitingHourRepository struct {
	db *gorm.DB
}

func NewVisitingHourRepository(db *gorm.DB) domainRepo.VisitingHourRepository {
	return &visitingHourRepository{db: db}
}

func (r *visitingHourRepository) First(ctx context.Context) (*entity.VisitingHour, error) {
	var hours entity.VisitingHour
	err := r.db.WithContext(ctx).Order("id ASC").First(&hours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hours, nil
}

func (r *visitingHourRepository) FirstOrCreate(ctx context.Context, defaults *entity.VisitingHour) (*entity.VisitingHour, error) {
	hours, err := r.First(ctx)
	if err != nil {
		return nil, err
	}
	if hours != nil {
		return hours, nil
	}

	if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

// Save inserts the singleton when it has no id yet, updates it otherwise.
func (r *visitingHourRepository) Save(ctx context.Context, hours *entity.VisitingHour) error {
	return r.db.WithContext(ctx).Save(hours).Error
}
