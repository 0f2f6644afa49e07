package usecase

import (
	"context"
	"time"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/repository"
	"hospital-portal/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DashboardLatestLimit is the number of contents and doctors listed on the
// dashboard.
const DashboardLatestLimit = 5

type DashboardUsecase interface {
	Get(ctx context.Context, now time.Time) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log              *logrus.Logger
	contentRepo      repository.ContentRepository
	doctorRepo       repository.DoctorRepository
	visitingHours    VisitingHourUsecase
	matcher          *service.ScheduleMatcher
	urls             converter.URLResolver
	placeholderPhoto string
}

func NewDashboardUsecase(
	log *logrus.Logger,
	contentRepo repository.ContentRepository,
	doctorRepo repository.DoctorRepository,
	visitingHours VisitingHourUsecase,
	matcher *service.ScheduleMatcher,
	urls converter.URLResolver,
	placeholderPhoto string,
) DashboardUsecase {
	return &dashboardUsecase{
		log:              log,
		contentRepo:      contentRepo,
		doctorRepo:       doctorRepo,
		visitingHours:    visitingHours,
		matcher:          matcher,
		urls:             urls,
		placeholderPhoto: placeholderPhoto,
	}
}

// Get gathers the dashboard figures. The queries are independent and run
// concurrently; the first failure cancels the rest.
func (u *dashboardUsecase) Get(ctx context.Context, now time.Time) (*dto.DashboardResponse, error) {
	var (
		latestContents []entity.Content
		activeCount    int64
		latestDoctors  []entity.Doctor
		activeDoctors  []entity.Doctor
		visitingHours  *dto.VisitingHourResponse
		contentStats   map[entity.ContentType]int64
		totalDoctors   int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		latestContents, err = u.contentRepo.FindPublished(ctx, "", DashboardLatestLimit)
		return err
	})
	g.Go(func() (err error) {
		activeCount, err = u.doctorRepo.CountActive(ctx)
		return err
	})
	g.Go(func() (err error) {
		latestDoctors, err = u.doctorRepo.FindActiveByRecency(ctx, DashboardLatestLimit)
		return err
	})
	g.Go(func() (err error) {
		activeDoctors, err = u.doctorRepo.FindActive(ctx)
		return err
	})
	g.Go(func() (err error) {
		visitingHours, err = u.visitingHours.Get(ctx)
		return err
	})
	g.Go(func() (err error) {
		contentStats, err = u.contentRepo.CountByType(ctx)
		return err
	})
	g.Go(func() (err error) {
		totalDoctors, err = u.doctorRepo.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard: %+v", err)
		return nil, err
	}

	today := todayInfo(u.matcher, now)
	onDuty := u.matcher.OnDutyToday(activeDoctors, today.Day, today.LocalizedDay)

	stats := make(map[string]int64, len(entity.ContentTypes))
	var totalContents int64
	for _, t := range entity.ContentTypes {
		stats[string(t)] = contentStats[t]
		totalContents += contentStats[t]
	}

	return &dto.DashboardResponse{
		Today:              today,
		LatestContents:     converter.ContentsToResponses(latestContents, u.urls),
		ActiveDoctorsCount: activeCount,
		LatestDoctors:      converter.DoctorsToResponses(latestDoctors, u.urls),
		TodayDoctors:       converter.OnDutyToResponses(onDuty, u.urls, u.placeholderPhoto),
		VisitingHours:      visitingHours,
		ContentStats:       stats,
		TotalContents:      totalContents,
		TotalDoctors:       totalDoctors,
	}, nil
}
