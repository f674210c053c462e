package handlers

// @title HPA News API
// @version 1.0
// @description Search proxy for the Health Promotion Administration news feed
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/your-org/hpa-news-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name news
// @tag.description News listing and search operations
