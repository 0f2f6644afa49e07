package repository

import (
	"context"
	"errors"

	"hospital-portal/internal/domain/entity"
	domainRepo "hospital-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAll lists doctors newest first. Search matches name, specialization or
// phone (ILIKE, OR-combined).
func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter, page entity.Pagination) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Scopes(doctorFilterScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	err := r.db.WithContext(ctx).
		Scopes(doctorFilterScope(filter)).
		Order("created_at DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

func doctorFilterScope(filter *entity.DoctorFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil || filter.Search == "" {
			return db
		}
		pattern := likePattern(filter.Search)
		return db.Where(
			"name ILIKE ? OR specialization ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern,
		)
	}
}

func (r *doctorRepository) FindActive(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindActiveByRecency(ctx context.Context, limit int) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindActiveSpecializations(ctx context.Context) ([]string, error) {
	var specializations []string
	err := r.db.WithContext(ctx).
		Model(&entity.Doctor{}).
		Where("is_active = ?", true).
		Distinct("specialization").
		Order("specialization ASC").
		Pluck("specialization", &specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *doctorRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Doctor{}).
		Where("is_active = ?", true).
		Count(&total).Error
	return total, err
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photo string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update("photo", photo).Error
}

// Delete soft-deletes the row; it stays in the table with deleted_at set.
func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	affected := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return affected.RowsAffected, affected.Error
}
