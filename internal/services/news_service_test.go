package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpa-news-api/internal/adapters/newsapi"
	"hpa-news-api/internal/models"
)

type fakeFetcher struct {
	items   []models.NewsItem
	err     error
	calls   int
	filters []models.SearchFilter
}

func (f *fakeFetcher) FetchNews(ctx context.Context, filter models.SearchFilter) ([]models.NewsItem, error) {
	f.calls++
	f.filters = append(f.filters, filter)
	return f.items, f.err
}

func TestNewsServiceFetchNews(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fetcher := &fakeFetcher{items: []models.NewsItem{{Title: "a"}, {Title: "b"}}}
		filter := models.SearchFilter{Keyword: "流感"}

		result := NewNewsService(fetcher).FetchNews(ctx, filter)

		assert.False(t, result.HasError())
		require.Len(t, result.NewsItems, 2)
		assert.Equal(t, "a", result.NewsItems[0].Title)
		assert.Equal(t, "b", result.NewsItems[1].Title)
		assert.Equal(t, []models.SearchFilter{filter}, fetcher.filters)
	})

	t.Run("EmptyUpstream", func(t *testing.T) {
		result := NewNewsService(&fakeFetcher{}).FetchNews(ctx, models.SearchFilter{})

		assert.False(t, result.HasError())
		assert.NotNil(t, result.NewsItems)
		assert.Empty(t, result.NewsItems)
	})

	t.Run("FailureDropsItems", func(t *testing.T) {
		fetcher := &fakeFetcher{
			items: []models.NewsItem{{Title: "partial"}},
			err:   &newsapi.UpstreamError{Op: "fetch", StatusCode: 503, Err: newsapi.ErrUpstreamUnavailable},
		}

		result := NewNewsService(fetcher).FetchNews(ctx, models.SearchFilter{})

		assert.True(t, result.HasError())
		assert.Equal(t, "unable to fetch news: 503", result.Message())
		assert.Empty(t, result.NewsItems)
		assert.Equal(t, 1, fetcher.calls)
	})
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Status",
			err:  &newsapi.UpstreamError{Op: "fetch", StatusCode: 404, Err: newsapi.ErrUpstreamUnavailable},
			want: "unable to fetch news: 404",
		},
		{
			name: "Transport",
			err:  &newsapi.UpstreamError{Op: "fetch", Err: newsapi.ErrUpstreamUnavailable, Cause: errors.New("connection refused")},
			want: "unable to fetch news: connection refused",
		},
		{
			name: "Malformed",
			err:  &newsapi.UpstreamError{Op: "decode", StatusCode: 200, Err: newsapi.ErrUpstreamMalformed, Cause: errors.New("unexpected end of JSON input")},
			want: "unable to parse news response: unexpected end of JSON input",
		},
		{
			name: "Wrapped",
			err:  fmt.Errorf("outer: %w", &newsapi.UpstreamError{Op: "fetch", StatusCode: 500, Err: newsapi.ErrUpstreamUnavailable}),
			want: "unable to fetch news: 500",
		},
		{
			name: "Unknown",
			err:  errors.New("something else"),
			want: "unable to fetch news: something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestServiceContainerWiresUpstreamClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	container := NewServiceContainer(&ServiceConfig{
		NewsAPI:    newsapi.ClientConfig{BaseURL: srv.URL},
		HTTPClient: srv.Client(),
	})

	result := container.NewsService.FetchNews(context.Background(), models.SearchFilter{})
	assert.Equal(t, "unable to fetch news: 503", result.Message())
	assert.Empty(t, result.NewsItems)
}
