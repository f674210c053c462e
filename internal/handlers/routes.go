package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	NewsHandler *NewsHandler
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	newsHandler := config.NewsHandler

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "hpa-news-api",
			"version": "1.0.0",
		})
	})

	// The dispatcher owns method handling, so unsupported methods reach it
	// and are answered with 405 in the news response shape.
	v1 := router.Group("/api/v1")
	{
		v1.Any("/news", newsHandler.FetchNews)
		v1.Any("/searchNews", newsHandler.SearchNews)
	}
}
