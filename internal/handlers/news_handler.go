package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hpa-news-api/internal/config"
	"hpa-news-api/internal/logger"
	"hpa-news-api/internal/middleware"
	"hpa-news-api/internal/models"
	"hpa-news-api/internal/services"
	"hpa-news-api/pkg/lambda"
)

// ContentTypeJSON is the content type of every news response
const ContentTypeJSON = "application/json; charset=utf-8"

// NewsHandler dispatches news requests to the news service
type NewsHandler struct {
	newsService services.NewsService
	log         *logrus.Logger
	debug       bool
}

// NewNewsHandler creates a new news handler. When debug is set every
// invocation logs its raw request, parsed filter and result.
func NewNewsHandler(newsService services.NewsService, log *logrus.Logger, debug bool) *NewsHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &NewsHandler{
		newsService: newsService,
		log:         log,
		debug:       debug,
	}
}

// Dispatch turns a method and body into a filter, runs the search and
// returns the outbound status code with the result.
func (h *NewsHandler) Dispatch(ctx context.Context, method string, body []byte) (int, *models.NewsResult) {
	log := logger.FromContext(ctx)

	var filter models.SearchFilter
	switch method {
	case http.MethodGet:
	case http.MethodPost:
		filter = parseFilter(log, body)
	default:
		log.WithField("method", method).Warn("Rejected request with unsupported method")
		return methodNotAllowedResult()
	}

	result := h.newsService.FetchNews(ctx, filter)
	return statusForResult(result), result
}

// HandleSearch serves both news routes for the Lambda entry point
func (h *NewsHandler) HandleSearch(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	ctx, log := h.invocation(ctx, req.RequestID, req.Method, req.Path)
	log.WithFields(logrus.Fields{
		"headers":      req.Headers,
		"query_params": req.QueryParams,
		"body":         string(req.Body),
	}).Debug("Event")

	status, result := h.Dispatch(ctx, req.Method, req.Body)

	body, err := encodeResult(result)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"status_code": status,
		"result":      string(body),
	}).Debug("News response")

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
		Body:       body,
	}, nil
}

// @Summary Fetch news
// @Description Fetch the latest news without filters
// @Tags news
// @Produce json
// @Success 200 {object} models.NewsResult
// @Failure 405 {object} models.NewsResult
// @Failure 500 {object} models.NewsResult
// @Router /news [get]
func (h *NewsHandler) FetchNews(c *gin.Context) {
	h.serveGin(c)
}

// @Summary Search news
// @Description Search news by keyword and publish date range
// @Tags news
// @Accept json
// @Produce json
// @Param filter body models.SearchFilter false "Search filter (dates as YYYY-MM-DD)"
// @Success 200 {object} models.NewsResult
// @Failure 405 {object} models.NewsResult
// @Failure 500 {object} models.NewsResult
// @Router /searchNews [post]
func (h *NewsHandler) SearchNews(c *gin.Context) {
	h.serveGin(c)
}

func (h *NewsHandler) serveGin(c *gin.Context) {
	ctx, log := h.invocation(c.Request.Context(), c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path)

	var (
		status int
		result *models.NewsResult
	)
	body, err := readBody(c.Request)
	if err != nil {
		log.WithError(err).Warn("Rejected request with unreadable body")
		status, result = bodyReadErrorResult(err)
	} else {
		log.WithField("body", string(body)).Debug("Event")
		status, result = h.Dispatch(ctx, c.Request.Method, body)
	}

	encoded, err := encodeResult(result)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	log.WithFields(logrus.Fields{
		"status_code": status,
		"result":      string(encoded),
	}).Debug("News response")

	c.Data(status, ContentTypeJSON, encoded)
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	return io.ReadAll(req.Body)
}

// invocation builds the logger scoped to one request and stores it in ctx
func (h *NewsHandler) invocation(ctx context.Context, requestID, method, path string) (context.Context, *logrus.Entry) {
	if requestID == "" {
		requestID = uuid.New().String()
	}

	log := logger.ForInvocation(h.log, h.debug, logrus.Fields{
		"request_id":      requestID,
		"method":          method,
		"path":            path,
		"deployment_mode": config.GetDeploymentMode(),
	})
	return logger.WithContext(ctx, log), log
}

// parseFilter reads keyword, start_date and end_date from a JSON object body.
// Non-string values are ignored and an unreadable body yields an empty filter.
func parseFilter(log *logrus.Entry, body []byte) models.SearchFilter {
	if len(bytes.TrimSpace(body)) == 0 {
		return models.SearchFilter{}
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		log.WithError(err).Warn("Ignoring request body that is not a JSON object")
		return models.SearchFilter{}
	}

	filter := models.SearchFilter{
		Keyword:   stringField(fields, "keyword"),
		StartDate: stringField(fields, "start_date"),
		EndDate:   stringField(fields, "end_date"),
	}
	log.WithFields(logrus.Fields{
		"keyword":    filter.Keyword,
		"start_date": filter.StartDate,
		"end_date":   filter.EndDate,
	}).Debug("Parsed request body")

	return filter
}

func stringField(fields map[string]interface{}, key string) string {
	value, ok := fields[key].(string)
	if !ok {
		return ""
	}
	return value
}

// encodeResult serializes a result without escaping HTML in article content
func encodeResult(result *models.NewsResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
