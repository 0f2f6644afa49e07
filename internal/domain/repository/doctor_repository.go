package repository

import (
	"context"

	"hospital-portal/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindAll(ctx context.Context, filter *entity.DoctorFilter, page entity.Pagination) ([]entity.Doctor, int64, error)
	FindActive(ctx context.Context) ([]entity.Doctor, error)
	FindActiveByRecency(ctx context.Context, limit int) ([]entity.Doctor, error)
	FindActiveSpecializations(ctx context.Context) ([]string, error)
	CountActive(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, photo string) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
