package converter

import (
	"time"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
)

// PublishedDateLayout renders dates such as "05 May 2025".
const PublishedDateLayout = "02 January 2006"

func ArticleToSummary(content *entity.Content, urls URLResolver, loc *time.Location) dto.ArticleSummaryResponse {
	return dto.ArticleSummaryResponse{
		ID:          content.ID,
		Title:       content.Title,
		Excerpt:     service.Excerpt(content.Body, service.ArticleExcerptLength),
		Body:        content.Body,
		Images:      ImageURLs(content.Images, urls),
		PublishedAt: content.CreatedAt.In(loc).Format(PublishedDateLayout),
	}
}

func ArticleToDetail(content *entity.Content, urls URLResolver, loc *time.Location) dto.ArticleDetailResponse {
	return dto.ArticleDetailResponse{
		ID:          content.ID,
		Title:       content.Title,
		Body:        content.Body,
		Images:      ImageURLs(content.Images, urls),
		PublishedAt: content.CreatedAt.In(loc).Format(PublishedDateLayout),
		Type:        content.Type.Label(),
	}
}

func ArticleToRelated(content *entity.Content, urls URLResolver) dto.RelatedArticleResponse {
	related := dto.RelatedArticleResponse{
		ID:      content.ID,
		Title:   content.Title,
		Excerpt: service.Excerpt(content.Body, service.RelatedExcerptLength),
	}
	if len(content.Images) > 0 {
		u := urls.URL(content.Images[0].Path)
		related.Image = &u
	}
	return related
}
