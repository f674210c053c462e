package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"hpa-news-api/internal/models"
)

// ErrMethodNotAllowed is returned for any method other than GET or POST
var ErrMethodNotAllowed = errors.New("method not allowed")

// ErrUnreadableBody is returned when the request body cannot be read in full
var ErrUnreadableBody = errors.New("unable to read request body")

// statusForResult maps a service result to the outbound status code
func statusForResult(result *models.NewsResult) int {
	if result.HasError() {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// methodNotAllowedResult is the immediate rejection for unsupported methods
func methodNotAllowedResult() (int, *models.NewsResult) {
	return http.StatusMethodNotAllowed, models.NewErrorResult(ErrMethodNotAllowed.Error())
}

// bodyReadErrorResult rejects a request whose body could not be read. A body
// cut off by the size limit is a 413, any other read failure a 400.
func bodyReadErrorResult(err error) (int, *models.NewsResult) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge, models.NewErrorResult(
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
	}
	return http.StatusBadRequest, models.NewErrorResult(ErrUnreadableBody.Error())
}
