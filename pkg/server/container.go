package server

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"hpa-news-api/internal/adapters/newsapi"
	"hpa-news-api/internal/config"
	"hpa-news-api/internal/logger"
	"hpa-news-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	NewsService services.NewsService

	// Internal dependencies
	httpClient *http.Client
	services   *services.ServiceContainer
}

// Option customizes a Container during construction
type Option func(*Container)

// WithHTTPClient overrides the client used for upstream calls
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithLogger overrides the process logger
func WithLogger(log *logrus.Logger) Option {
	return func(c *Container) {
		c.Logger = log
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	container := &Container{Config: cfg}
	for _, opt := range opts {
		opt(container)
	}

	if container.Logger == nil {
		container.Logger = logger.New(logger.Options{
			Level: cfg.LogLevel,
			JSON:  config.IsServerlessMode() || cfg.IsProduction(),
		})
	}

	if container.httpClient == nil {
		container.httpClient = &http.Client{Timeout: cfg.NewsAPI.Timeout}
	}

	container.services = services.NewServiceContainer(&services.ServiceConfig{
		NewsAPI: newsapi.ClientConfig{
			BaseURL:   cfg.NewsAPI.BaseURL,
			Timeout:   cfg.NewsAPI.Timeout,
			UserAgent: cfg.NewsAPI.UserAgent,
		},
		HTTPClient: container.httpClient,
	})
	container.NewsService = container.services.NewsService

	fields := logrus.Fields{
		"deployment_mode": config.GetDeploymentMode(),
		"news_api_url":    cfg.NewsAPI.BaseURL,
		"timeout":         cfg.NewsAPI.Timeout.String(),
		"debug_mode":      cfg.DebugMode,
	}
	for key, value := range config.GetServerlessConfig().Fields() {
		fields[key] = value
	}
	container.Logger.WithFields(fields).Info("Container initialized")

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}
