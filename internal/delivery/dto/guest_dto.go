package dto

import "github.com/google/uuid"

type FeaturedDoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	PhotoURL       string    `json:"photo_url"`
}

type HomeStats struct {
	Doctors        int64  `json:"doctors"`
	OperationHours string `json:"operation_hours"`
}

type HomeResponse struct {
	FeaturedDoctors  []FeaturedDoctorResponse `json:"featured_doctors"`
	Stats            HomeStats                `json:"stats"`
	FeaturedContents []ContentResponse        `json:"featured_contents"`
	VisitingHours    *VisitingHourResponse    `json:"visiting_hours"`
}

type GuestDoctorIndexResponse struct {
	Doctors         []DoctorResponse `json:"doctors"`
	Specializations []string         `json:"specializations"`
}

type GuestDoctorDetailResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Specialization  string                  `json:"specialization"`
	PhotoURL        string                  `json:"photo_url"`
	Phone           *string                 `json:"phone"`
	Schedule        []ScheduleEntryResponse `json:"schedule"`
	ScheduleDisplay string                  `json:"schedule_display"`
}

type GuestTodayResponse struct {
	Today   TodayInfo              `json:"today"`
	Doctors []OnDutyDoctorResponse `json:"doctors"`
}

type ArticleSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	Images      []string  `json:"images"`
	PublishedAt string    `json:"published_at"`
}

type RelatedArticleResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Image   *string   `json:"image"`
}

type ArticleDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Images      []string  `json:"images"`
	PublishedAt string    `json:"published_at"`
	Type        string    `json:"type"`
}

type GuestArticleResponse struct {
	Article         ArticleDetailResponse    `json:"article"`
	RelatedArticles []RelatedArticleResponse `json:"related_articles"`
}

type GuestEducationIndexResponse struct {
	Articles     []ArticleSummaryResponse `json:"articles"`
	ContentTypes []ContentTypeOption      `json:"content_types"`
}
