package usecase

import (
	"context"
	"strings"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/repository"
	"hospital-portal/internal/domain/storage"
	"hospital-portal/internal/service"
	"hospital-portal/pkg/apperror"
	"hospital-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest, photo *storage.UploadedFile) (*dto.DoctorResponse, error)
	// Update replaces every profile field. A non-nil photo replaces the
	// current one in the same save.
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest, photo *storage.UploadedFile) (*dto.DoctorResponse, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, photo storage.UploadedFile) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context, req *dto.DoctorListRequest) (*dto.DoctorListResponse, error)
	ListActive(ctx context.Context) ([]dto.DoctorResponse, error)
	ListActiveOrderedByRecency(ctx context.Context, limit int) ([]dto.DoctorResponse, error)
	Specializations(ctx context.Context) ([]string, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	validator  *validator.CustomValidator
	doctorRepo repository.DoctorRepository
	files      service.GalleryReconciler
	urls       converter.URLResolver
}

func NewDoctorUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	files service.GalleryReconciler,
	urls converter.URLResolver,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		validator:  validator,
		doctorRepo: doctorRepo,
		files:      files,
		urls:       urls,
	}
}

func doctorNotFound(id uuid.UUID) error {
	return apperror.NewNotFoundError("doctor", id.String())
}

func (u *doctorUsecase) normalize(req *dto.CreateDoctorRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Specialization = strings.TrimSpace(req.Specialization)
	req.Phone = trimOptional(req.Phone)
	// A doctor is active unless told otherwise.
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
	return u.validator.ValidateStruct(req)
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest, photo *storage.UploadedFile) (*dto.DoctorResponse, error) {
	if err := u.normalize(req); err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Schedule:       converter.ScheduleFromRequest(req.Schedule),
		IsActive:       req.IsActive,
	}

	if photo != nil {
		path, err := u.files.StoreFile(ctx, service.DoctorPhotoDir, *photo)
		if err != nil {
			return nil, err
		}
		doctor.Photo = &path
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if doctor.Photo != nil {
			u.files.Purge(ctx, []string{*doctor.Photo})
		}
		return nil, err
	}

	return converter.DoctorToResponse(doctor, u.urls), nil
}

// Update stores the new photo first, then saves the profile and photo
// together. The previous photo is removed only after the save succeeds.
func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest, photo *storage.UploadedFile) (*dto.DoctorResponse, error) {
	if err := u.normalize(req); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, doctorNotFound(id)
	}

	previous := doctor.Photo
	var stored string
	if photo != nil {
		stored, err = u.files.StoreFile(ctx, service.DoctorPhotoDir, *photo)
		if err != nil {
			return nil, err
		}
		doctor.Photo = &stored
	}

	doctor.Name = req.Name
	doctor.Specialization = req.Specialization
	doctor.Phone = req.Phone
	doctor.Schedule = converter.ScheduleFromRequest(req.Schedule)
	doctor.IsActive = req.IsActive

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		if stored != "" {
			u.files.Purge(ctx, []string{stored})
		}
		return nil, err
	}

	if stored != "" && previous != nil && *previous != stored {
		u.files.Purge(ctx, []string{*previous})
	}

	return converter.DoctorToResponse(doctor, u.urls), nil
}

// UpdatePhoto stores the new photo, points the doctor at it and only then
// removes the previous file, so a failed upload leaves the old photo intact.
func (u *doctorUsecase) UpdatePhoto(ctx context.Context, id uuid.UUID, photo storage.UploadedFile) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, doctorNotFound(id)
	}

	path, err := u.files.StoreFile(ctx, service.DoctorPhotoDir, photo)
	if err != nil {
		return nil, err
	}

	if err := u.doctorRepo.UpdatePhoto(ctx, id, path); err != nil {
		u.log.Warnf("Failed to update doctor photo: %+v", err)
		u.files.Purge(ctx, []string{path})
		return nil, err
	}

	previous := doctor.Photo
	doctor.Photo = &path
	if previous != nil && *previous != path {
		u.files.Purge(ctx, []string{*previous})
	}

	return converter.DoctorToResponse(doctor, u.urls), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return doctorNotFound(id)
	}

	affected, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return doctorNotFound(id)
	}

	if doctor.Photo != nil {
		u.files.Purge(ctx, []string{*doctor.Photo})
	}
	return nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, doctorNotFound(id)
	}

	return converter.DoctorToResponse(doctor, u.urls), nil
}

func (u *doctorUsecase) List(ctx context.Context, req *dto.DoctorListRequest) (*dto.DoctorListResponse, error) {
	req.Search = strings.TrimSpace(req.Search)
	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	page := entity.Pagination{Page: req.Page, PageSize: req.PageSize}.Normalize()
	doctors, total, err := u.doctorRepo.FindAll(ctx, &entity.DoctorFilter{Search: req.Search}, page)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors:  converter.DoctorsToResponses(doctors, u.urls),
		PageInfo: dto.PageInfo{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// ListActive returns active doctors ordered by name.
func (u *doctorUsecase) ListActive(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors, u.urls), nil
}

// ListActiveOrderedByRecency returns the newest active doctors first. A limit
// of zero returns all of them.
func (u *doctorUsecase) ListActiveOrderedByRecency(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindActiveByRecency(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to list recent doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors, u.urls), nil
}

func (u *doctorUsecase) Specializations(ctx context.Context) ([]string, error) {
	specializations, err := u.doctorRepo.FindActiveSpecializations(ctx)
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}
	if specializations == nil {
		specializations = []string{}
	}
	return specializations, nil
}
