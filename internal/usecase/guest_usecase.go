package usecase

import (
	"context"
	"time"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/repository"
	"hospital-portal/internal/service"
	"hospital-portal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	FeaturedDoctorsLimit = 5
	RelatedArticlesLimit = 3
	// OperationHours is shown on the home page: the hospital never closes.
	OperationHours = "24"
)

// GuestUsecase builds the read-only public pages.
type GuestUsecase interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)
	Doctors(ctx context.Context) (*dto.GuestDoctorIndexResponse, error)
	Doctor(ctx context.Context, id uuid.UUID) (*dto.GuestDoctorDetailResponse, error)
	Today(ctx context.Context, now time.Time) (*dto.GuestTodayResponse, error)
	Education(ctx context.Context) (*dto.GuestEducationIndexResponse, error)
	Article(ctx context.Context, id uuid.UUID) (*dto.GuestArticleResponse, error)
	VisitingHours(ctx context.Context) (*dto.VisitingHourResponse, error)
}

type guestUsecase struct {
	log              *logrus.Logger
	contentRepo      repository.ContentRepository
	doctorRepo       repository.DoctorRepository
	visitingHours    VisitingHourUsecase
	matcher          *service.ScheduleMatcher
	urls             converter.URLResolver
	placeholderPhoto string
}

func NewGuestUsecase(
	log *logrus.Logger,
	contentRepo repository.ContentRepository,
	doctorRepo repository.DoctorRepository,
	visitingHours VisitingHourUsecase,
	matcher *service.ScheduleMatcher,
	urls converter.URLResolver,
	placeholderPhoto string,
) GuestUsecase {
	return &guestUsecase{
		log:              log,
		contentRepo:      contentRepo,
		doctorRepo:       doctorRepo,
		visitingHours:    visitingHours,
		matcher:          matcher,
		urls:             urls,
		placeholderPhoto: placeholderPhoto,
	}
}

func (u *guestUsecase) Home(ctx context.Context) (*dto.HomeResponse, error) {
	doctors, err := u.doctorRepo.FindActiveByRecency(ctx, FeaturedDoctorsLimit)
	if err != nil {
		u.log.Warnf("Failed to list featured doctors: %+v", err)
		return nil, err
	}

	activeCount, err := u.doctorRepo.CountActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to count active doctors: %+v", err)
		return nil, err
	}

	contents, err := u.contentRepo.FindPublished(ctx, "", 0)
	if err != nil {
		u.log.Warnf("Failed to list published contents: %+v", err)
		return nil, err
	}

	visitingHours, err := u.visitingHours.GetPublic(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]dto.FeaturedDoctorResponse, len(doctors))
	for i := range doctors {
		featured[i] = converter.DoctorToFeatured(&doctors[i], u.urls, u.placeholderPhoto)
	}

	return &dto.HomeResponse{
		FeaturedDoctors:  featured,
		Stats:            dto.HomeStats{Doctors: activeCount, OperationHours: OperationHours},
		FeaturedContents: converter.ContentsToResponses(contents, u.urls),
		VisitingHours:    visitingHours,
	}, nil
}

func (u *guestUsecase) Doctors(ctx context.Context) (*dto.GuestDoctorIndexResponse, error) {
	doctors, err := u.doctorRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active doctors: %+v", err)
		return nil, err
	}

	specializations, err := u.doctorRepo.FindActiveSpecializations(ctx)
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}
	if specializations == nil {
		specializations = []string{}
	}

	return &dto.GuestDoctorIndexResponse{
		Doctors:         converter.DoctorsToResponses(doctors, u.urls),
		Specializations: specializations,
	}, nil
}

// Doctor returns an active doctor's public profile. Inactive doctors are
// reported as not found.
func (u *guestUsecase) Doctor(ctx context.Context, id uuid.UUID) (*dto.GuestDoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.Active() {
		return nil, doctorNotFound(id)
	}

	return converter.DoctorToGuestDetail(doctor, u.urls, u.placeholderPhoto), nil
}

func (u *guestUsecase) Today(ctx context.Context, now time.Time) (*dto.GuestTodayResponse, error) {
	doctors, err := u.doctorRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active doctors: %+v", err)
		return nil, err
	}

	today := todayInfo(u.matcher, now)
	onDuty := u.matcher.OnDutyToday(doctors, today.Day, today.LocalizedDay)

	return &dto.GuestTodayResponse{
		Today:   today,
		Doctors: converter.OnDutyToResponses(onDuty, u.urls, u.placeholderPhoto),
	}, nil
}

func (u *guestUsecase) Education(ctx context.Context) (*dto.GuestEducationIndexResponse, error) {
	contents, err := u.contentRepo.FindPublished(ctx, entity.ContentTypeEducation, 0)
	if err != nil {
		u.log.Warnf("Failed to list education articles: %+v", err)
		return nil, err
	}

	articles := make([]dto.ArticleSummaryResponse, len(contents))
	for i := range contents {
		articles[i] = converter.ArticleToSummary(&contents[i], u.urls, u.matcher.Location())
	}

	return &dto.GuestEducationIndexResponse{
		Articles:     articles,
		ContentTypes: converter.ContentTypeOptions(),
	}, nil
}

// Article returns a published item with a few random related education
// articles.
func (u *guestUsecase) Article(ctx context.Context, id uuid.UUID) (*dto.GuestArticleResponse, error) {
	content, err := u.contentRepo.FindPublishedByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find article: %+v", err)
		return nil, err
	}
	if content == nil {
		return nil, apperror.NewNotFoundError("article", id.String())
	}

	related, err := u.contentRepo.FindRelatedPublished(ctx, entity.ContentTypeEducation, id, RelatedArticlesLimit)
	if err != nil {
		u.log.Warnf("Failed to list related articles: %+v", err)
		return nil, err
	}

	relatedArticles := make([]dto.RelatedArticleResponse, len(related))
	for i := range related {
		relatedArticles[i] = converter.ArticleToRelated(&related[i], u.urls)
	}

	return &dto.GuestArticleResponse{
		Article:         converter.ArticleToDetail(content, u.urls, u.matcher.Location()),
		RelatedArticles: relatedArticles,
	}, nil
}

func (u *guestUsecase) VisitingHours(ctx context.Context) (*dto.VisitingHourResponse, error) {
	return u.visitingHours.GetPublic(ctx)
}
