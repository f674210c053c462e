package newsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"hpa-news-api/internal/logger"
	"hpa-news-api/internal/models"
)

// DefaultBaseURL is the health promotion administration news endpoint
const DefaultBaseURL = "https://www.hpa.gov.tw/wf/newsapi.ashx"

// MaxResponseSize caps how much of an upstream body is read
const MaxResponseSize = 10 << 20

// ClientConfig configures the news API client
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// DefaultClientConfig returns the configuration used when none is supplied
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		UserAgent: "hpa-news-api/1.0",
	}
}

// Client calls the news API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a news API client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg ClientConfig, httpClient *http.Client) *Client {
	defaults := DefaultClientConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}
}

// BaseURL returns the configured upstream endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildURL composes the request URL from the base endpoint and a filter.
// The base is returned untouched when the filter is blank.
func BuildURL(base string, filter models.SearchFilter) string {
	if !filter.HasFilters() {
		return base
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + filter.Encode()
}

// FetchNews issues a single GET against the news API and maps the response.
// Failures are returned as *UpstreamError.
func (c *Client) FetchNews(ctx context.Context, filter models.SearchFilter) ([]models.NewsItem, error) {
	log := logger.FromContext(ctx)
	requestURL := BuildURL(c.baseURL, filter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, newTransportError(requestURL, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).WithField("url", requestURL).Warn("News API request failed")
		return nil, newTransportError(requestURL, err)
	}
	defer resp.Body.Close()

	log.WithFields(logrus.Fields{
		"url":         requestURL,
		"status_code": resp.StatusCode,
		"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
	}).Debug("News API responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(requestURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, newTransportError(requestURL, fmt.Errorf("failed to read response body: %w", err))
	}
	if len(body) > MaxResponseSize {
		return nil, newDecodeError(requestURL, resp.StatusCode, fmt.Errorf("response body exceeds %d bytes", MaxResponseSize))
	}

	items, err := MapNewsItems(body)
	if err != nil {
		return nil, newDecodeError(requestURL, resp.StatusCode, err)
	}

	return items, nil
}
