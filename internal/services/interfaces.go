package services

import (
	"context"

	"hpa-news-api/internal/models"
)

// NewsService defines the interface for news search operations
type NewsService interface {
	// FetchNews searches the upstream news API. Failures are reported in the
	// returned result's error message, never as a partial item list.
	FetchNews(ctx context.Context, filter models.SearchFilter) *models.NewsResult
}

// NewsFetcher performs the raw upstream call
type NewsFetcher interface {
	FetchNews(ctx context.Context, filter models.SearchFilter) ([]models.NewsItem, error)
}
