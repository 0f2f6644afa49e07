package usecase

import (
	"context"
	"time"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/cache"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/repository"
	"hospital-portal/pkg/apperror"
	"hospital-portal/pkg/validator"

	"github.com/sirupsen/logrus"
)

// VisitingHoursCacheKey holds the public visiting hours view.
const VisitingHoursCacheKey = "visiting_hours"

type VisitingHourUsecase interface {
	// Get returns the singleton, creating it with defaults when missing.
	Get(ctx context.Context) (*dto.VisitingHourResponse, error)
	// GetPublic is Get served through the cache.
	GetPublic(ctx context.Context) (*dto.VisitingHourResponse, error)
	Update(ctx context.Context, req *dto.UpdateVisitingHourRequest) (*dto.VisitingHourResponse, error)
}

type visitingHourUsecase struct {
	log              *logrus.Logger
	validator        *validator.CustomValidator
	visitingHourRepo repository.VisitingHourRepository
	cache            cache.Cache
	cacheTTL         time.Duration
}

// NewVisitingHourUsecase accepts a nil cache, in which case every read goes
// to the database.
func NewVisitingHourUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	visitingHourRepo repository.VisitingHourRepository,
	cache cache.Cache,
	cacheTTL time.Duration,
) VisitingHourUsecase {
	return &visitingHourUsecase{
		log:              log,
		validator:        validator,
		visitingHourRepo: visitingHourRepo,
		cache:            cache,
		cacheTTL:         cacheTTL,
	}
}

func (u *visitingHourUsecase) Get(ctx context.Context) (*dto.VisitingHourResponse, error) {
	hours, err := u.visitingHourRepo.FirstOrCreate(ctx, entity.NewDefaultVisitingHour())
	if err != nil {
		u.log.Warnf("Failed to load visiting hours: %+v", err)
		return nil, err
	}
	return converter.VisitingHourToResponse(hours), nil
}

func (u *visitingHourUsecase) GetPublic(ctx context.Context) (*dto.VisitingHourResponse, error) {
	if u.cache != nil {
		var cached dto.VisitingHourResponse
		found, err := u.cache.GetJSON(ctx, VisitingHoursCacheKey, &cached)
		if err != nil {
			u.log.Warnf("Failed to read visiting hours from cache: %+v", err)
		} else if found {
			return &cached, nil
		}
	}

	response, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, VisitingHoursCacheKey, response, u.cacheTTL); err != nil {
			u.log.Warnf("Failed to cache visiting hours: %+v", err)
		}
	}
	return response, nil
}

// Update replaces the whole record. Each end time must be after its start
// time when both are present.
func (u *visitingHourUsecase) Update(ctx context.Context, req *dto.UpdateVisitingHourRequest) (*dto.VisitingHourResponse, error) {
	req.MorningStart = trimOptional(req.MorningStart)
	req.MorningEnd = trimOptional(req.MorningEnd)
	req.AfternoonStart = trimOptional(req.AfternoonStart)
	req.AfternoonEnd = trimOptional(req.AfternoonEnd)
	req.Notes = trimOptional(req.Notes)

	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	if !endsAfterStart(req.MorningStart, req.MorningEnd) {
		fields["morning_end"] = "morning_end must be a time after morning_start"
	}
	if !endsAfterStart(req.AfternoonStart, req.AfternoonEnd) {
		fields["afternoon_end"] = "afternoon_end must be a time after afternoon_start"
	}
	if err := apperror.NewValidationErrors(fields); err != nil {
		return nil, err
	}

	hours, err := u.visitingHourRepo.FirstOrCreate(ctx, entity.NewDefaultVisitingHour())
	if err != nil {
		u.log.Warnf("Failed to load visiting hours: %+v", err)
		return nil, err
	}

	converter.ApplyVisitingHourRequest(hours, req)

	if err := u.visitingHourRepo.Save(ctx, hours); err != nil {
		u.log.Warnf("Failed to save visiting hours: %+v", err)
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, VisitingHoursCacheKey); err != nil {
			u.log.Warnf("Failed to invalidate visiting hours cache: %+v", err)
		}
	}

	return converter.VisitingHourToResponse(hours), nil
}

// endsAfterStart reports whether end is strictly after start. A missing side
// passes. Both values are already known to be valid HH:MM.
func endsAfterStart(start, end *string) bool {
	if start == nil || end == nil {
		return true
	}
	s, err := time.Parse(validator.TimeLayout, *start)
	if err != nil {
		return true
	}
	e, err := time.Parse(validator.TimeLayout, *end)
	if err != nil {
		return true
	}
	return e.After(s)
}
