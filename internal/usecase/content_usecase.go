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

type ContentUsecase interface {
	Create(ctx context.Context, req *dto.CreateContentRequest, images []storage.UploadedFile) (*dto.ContentResponse, error)
	// Update replaces the editable fields and applies gallery changes:
	// req.DeletedImages are removed and newImages appended.
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateContentRequest, newImages []storage.UploadedFile) (*dto.ContentResponse, error)
	UpdateImages(ctx context.Context, id uuid.UUID, newImages []storage.UploadedFile, deletedPaths []string) (*dto.ContentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*dto.ContentResponse, error)
	List(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentListResponse, error)
	ListPublished(ctx context.Context, contentType string) ([]dto.ContentResponse, error)
	ContentTypes() []dto.ContentTypeOption
}

type contentUsecase struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	contentRepo repository.ContentRepository
	gallery     service.GalleryReconciler
	urls        converter.URLResolver
}

func NewContentUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	contentRepo repository.ContentRepository,
	gallery service.GalleryReconciler,
	urls converter.URLResolver,
) ContentUsecase {
	return &contentUsecase{
		log:         log,
		validator:   validator,
		contentRepo: contentRepo,
		gallery:     gallery,
		urls:        urls,
	}
}

func contentNotFound(id uuid.UUID) error {
	return apperror.NewNotFoundError("content", id.String())
}

func (u *contentUsecase) Create(ctx context.Context, req *dto.CreateContentRequest, images []storage.UploadedFile) (*dto.ContentResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	req.Type = strings.TrimSpace(req.Type)
	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	gallery, err := u.gallery.Reconcile(ctx, nil, images, nil)
	if err != nil {
		return nil, err
	}

	content := &entity.Content{
		Title:       req.Title,
		Body:        req.Body,
		Type:        entity.ContentType(req.Type),
		IsPublished: req.IsPublished != nil && *req.IsPublished,
		Images:      gallery.NextImages,
	}

	if err := u.contentRepo.Create(ctx, content); err != nil {
		u.log.Warnf("Failed to create content: %+v", err)
		u.gallery.Purge(ctx, gallery.Uploaded)
		return nil, err
	}

	return converter.ContentToResponse(content, u.urls), nil
}

func (u *contentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateContentRequest, newImages []storage.UploadedFile) (*dto.ContentResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	req.Type = strings.TrimSpace(req.Type)
	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	content, err := u.contentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find content: %+v", err)
		return nil, err
	}
	if content == nil {
		return nil, contentNotFound(id)
	}

	gallery, err := u.gallery.Reconcile(ctx, content.Images, newImages, req.DeletedImages)
	if err != nil {
		return nil, err
	}

	content.Title = req.Title
	content.Body = req.Body
	content.Type = entity.ContentType(req.Type)
	content.IsPublished = req.IsPublished != nil && *req.IsPublished
	content.Images = gallery.NextImages

	if err := u.contentRepo.Update(ctx, content); err != nil {
		u.log.Warnf("Failed to update content: %+v", err)
		u.gallery.Purge(ctx, gallery.Uploaded)
		return nil, err
	}

	u.gallery.Purge(ctx, gallery.FilesToDelete)

	return converter.ContentToResponse(content, u.urls), nil
}

func (u *contentUsecase) UpdateImages(ctx context.Context, id uuid.UUID, newImages []storage.UploadedFile, deletedPaths []string) (*dto.ContentResponse, error) {
	content, err := u.contentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find content: %+v", err)
		return nil, err
	}
	if content == nil {
		return nil, contentNotFound(id)
	}

	gallery, err := u.gallery.Reconcile(ctx, content.Images, newImages, deletedPaths)
	if err != nil {
		return nil, err
	}

	if err := u.contentRepo.UpdateImages(ctx, id, gallery.NextImages); err != nil {
		u.log.Warnf("Failed to update content images: %+v", err)
		u.gallery.Purge(ctx, gallery.Uploaded)
		return nil, err
	}

	u.gallery.Purge(ctx, gallery.FilesToDelete)

	content.Images = gallery.NextImages
	return converter.ContentToResponse(content, u.urls), nil
}

// Delete soft-deletes the item, then removes every image of its gallery.
func (u *contentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	content, err := u.contentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find content: %+v", err)
		return err
	}
	if content == nil {
		return contentNotFound(id)
	}

	affected, err := u.contentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete content: %+v", err)
		return err
	}
	if affected == 0 {
		return contentNotFound(id)
	}

	u.gallery.Purge(ctx, content.ImagePaths())
	return nil
}

func (u *contentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ContentResponse, error) {
	content, err := u.contentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find content: %+v", err)
		return nil, err
	}
	if content == nil {
		return nil, contentNotFound(id)
	}

	return converter.ContentToResponse(content, u.urls), nil
}

func (u *contentUsecase) List(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentListResponse, error) {
	req.Search = strings.TrimSpace(req.Search)
	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	page := entity.Pagination{Page: req.Page, PageSize: req.PageSize}.Normalize()
	filter := &entity.ContentFilter{
		Search: req.Search,
		Type:   entity.ContentType(req.Type),
	}

	contents, total, err := u.contentRepo.FindAll(ctx, filter, page)
	if err != nil {
		u.log.Warnf("Failed to list contents: %+v", err)
		return nil, err
	}

	return &dto.ContentListResponse{
		Contents: converter.ContentsToResponses(contents, u.urls),
		PageInfo: dto.PageInfo{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// ListPublished returns published items newest first, optionally of a
// single type.
func (u *contentUsecase) ListPublished(ctx context.Context, contentType string) ([]dto.ContentResponse, error) {
	t := entity.ContentType(strings.TrimSpace(contentType))
	if t != "" && !t.Valid() {
		return nil, apperror.NewValidationError("type", "type must be one of: rules, map, handwash, education, other")
	}

	contents, err := u.contentRepo.FindPublished(ctx, t, 0)
	if err != nil {
		u.log.Warnf("Failed to list published contents: %+v", err)
		return nil, err
	}

	return converter.ContentsToResponses(contents, u.urls), nil
}

func (u *contentUsecase) ContentTypes() []dto.ContentTypeOption {
	return converter.ContentTypeOptions()
}
