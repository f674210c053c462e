package services

import (
	"net/http"

	"hpa-news-api/internal/adapters/newsapi"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	NewsService NewsService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	NewsAPI    newsapi.ClientConfig
	HTTPClient *http.Client
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) *ServiceContainer {
	if config == nil {
		config = &ServiceConfig{
			NewsAPI: newsapi.DefaultClientConfig(),
		}
	}

	client := newsapi.NewClient(config.NewsAPI, config.HTTPClient)

	return &ServiceContainer{
		NewsService: NewNewsService(client),
	}
}
