package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"hpa-news-api/internal/handlers"
	"hpa-news-api/pkg/lambda"
)

var manager = lambda.GetConnectionManager()

func init() {
	// Warm up during the init phase; a failure here is retried on the first invocation.
	if _, err := manager.GetContainer(context.Background()); err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
	}
}

func handler(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	warm := manager.IsHealthy()

	container, err := manager.GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return errorResponse(), nil
	}

	req, err := lambda.FromHTTPAPIEvent(event)
	if err != nil {
		container.Logger.WithError(err).Error("Failed to convert event")
		return errorResponse(), nil
	}

	container.Logger.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"warm_start": warm,
	}).Debug("Invocation started")

	newsHandler := handlers.NewNewsHandler(container.NewsService, container.Logger, container.Config.DebugMode)

	resp, err := newsHandler.HandleSearch(ctx, req)
	if err != nil {
		container.Logger.WithError(err).Error("Failed to handle request")
		return errorResponse(), nil
	}

	return lambda.ToHTTPAPIResponse(resp), nil
}

func errorResponse() events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: 500,
		Headers:    map[string]string{"Content-Type": handlers.ContentTypeJSON},
		Body:       `{"news_items": [], "error_message": "internal server error"}`,
	}
}

func shutdown() {
	if err := manager.Cleanup(); err != nil {
		logrus.WithError(err).Warn("Failed to release container")
	}
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(shutdown))
}
