package newsapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Upstream error kinds
var (
	ErrUpstreamUnavailable = errors.New("news api unavailable")
	ErrUpstreamMalformed   = errors.New("news api returned a malformed response")
)

// UpstreamError describes a failed call to the news API
type UpstreamError struct {
	Op         string // Operation that failed ("fetch" or "decode")
	URL        string // Request URL
	StatusCode int    // HTTP status, zero when no response was received
	Err        error  // Error kind, one of the ErrUpstream* sentinels
	Cause      error  // Underlying failure, if any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("news api %s failed for %s: %s", e.Op, e.URL, e.Detail())
}

// Unwrap exposes both the error kind and the underlying cause to errors.Is/As
func (e *UpstreamError) Unwrap() []error {
	errs := []error{e.Err}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Detail returns the short, caller-facing description of the failure: the
// bare status code for HTTP errors, the cause otherwise.
func (e *UpstreamError) Detail() string {
	if e.Cause == nil {
		if e.StatusCode != 0 {
			return strconv.Itoa(e.StatusCode)
		}
		return e.Err.Error()
	}

	var urlErr *url.Error
	if errors.As(e.Cause, &urlErr) {
		if urlErr.Timeout() {
			return "timeout: " + urlErr.Err.Error()
		}
		return urlErr.Err.Error()
	}
	return e.Cause.Error()
}

func newStatusError(rawURL string, statusCode int) *UpstreamError {
	return &UpstreamError{
		Op:         "fetch",
		URL:        rawURL,
		StatusCode: statusCode,
		Err:        ErrUpstreamUnavailable,
	}
}

func newTransportError(rawURL string, cause error) *UpstreamError {
	return &UpstreamError{
		Op:    "fetch",
		URL:   rawURL,
		Err:   ErrUpstreamUnavailable,
		Cause: cause,
	}
}

func newDecodeError(rawURL string, statusCode int, cause error) *UpstreamError {
	return &UpstreamError{
		Op:         "decode",
		URL:        rawURL,
		StatusCode: statusCode,
		Err:        ErrUpstreamMalformed,
		Cause:      cause,
	}
}

// IsUnavailable returns true if the upstream could not be reached or answered non-2xx
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsMalformed returns true if the upstream answered with an undecodable body
func IsMalformed(err error) bool {
	return errors.Is(err, ErrUpstreamMalformed)
}
