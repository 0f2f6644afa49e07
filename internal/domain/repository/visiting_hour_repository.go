package repository

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

type VisitingHourRepository interface {
	// First returns the singleton row, or nil when it does not exist yet.
	First(ctx context.Context) (*entity.VisitingHour, error)
	// FirstOrCreate returns the singleton, inserting defaults when missing.
	FirstOrCreate(ctx context.Context, defaults *entity.VisitingHour) (*entity.VisitingHour, error)
	Save(ctx context.Context, hours *entity.VisitingHour) error
}
