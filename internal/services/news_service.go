package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"hpa-news-api/internal/adapters/newsapi"
	"hpa-news-api/internal/logger"
	"hpa-news-api/internal/models"
)

// Caller-facing error message prefixes
const (
	fetchErrorPrefix = "unable to fetch news: "
	parseErrorPrefix = "unable to parse news response: "
)

type newsService struct {
	fetcher NewsFetcher
}

// NewNewsService creates a news service backed by fetcher
func NewNewsService(fetcher NewsFetcher) NewsService {
	return &newsService{
		fetcher: fetcher,
	}
}

func (s *newsService) FetchNews(ctx context.Context, filter models.SearchFilter) *models.NewsResult {
	log := logger.FromContext(ctx)

	items, err := s.fetcher.FetchNews(ctx, filter)
	if err != nil {
		message := ErrorMessage(err)
		log.WithFields(logrus.Fields{
			"has_filters": filter.HasFilters(),
			"error":       err.Error(),
		}).Error("Failed to fetch news")
		return models.NewErrorResult(message)
	}

	log.WithField("news_count", len(items)).Info("News fetched")
	return models.NewNewsResult(items)
}

// ErrorMessage converts an upstream failure into the message returned to callers
func ErrorMessage(err error) string {
	var upstreamErr *newsapi.UpstreamError
	detail := err.Error()
	if errors.As(err, &upstreamErr) {
		detail = upstreamErr.Detail()
	}

	if newsapi.IsMalformed(err) {
		return parseErrorPrefix + detail
	}
	return fetchErrorPrefix + detail
}
