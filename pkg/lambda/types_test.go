package lambda

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func httpEvent(method, body string) events.APIGatewayV2HTTPRequest {
	event := events.APIGatewayV2HTTPRequest{
		RawPath: "/searchNews",
		Headers: map[string]string{"content-type": "application/json"},
		Body:    body,
	}
	event.RequestContext.RequestID = "req-1"
	event.RequestContext.HTTP.Method = method
	return event
}

func TestFromHTTPAPIEvent(t *testing.T) {
	t.Run("Post", func(t *testing.T) {
		req, err := FromHTTPAPIEvent(httpEvent("POST", `{"keyword":"流感"}`))
		require.NoError(t, err)

		assert.Equal(t, "req-1", req.RequestID)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "/searchNews", req.Path)
		assert.Equal(t, `{"keyword":"流感"}`, string(req.Body))
		assert.Equal(t, "application/json", req.Headers["content-type"])
	})

	t.Run("MissingMethodDefaultsToGet", func(t *testing.T) {
		req, err := FromHTTPAPIEvent(httpEvent("", ""))
		require.NoError(t, err)
		assert.Equal(t, "GET", req.Method)
	})

	t.Run("MethodNormalized", func(t *testing.T) {
		req, err := FromHTTPAPIEvent(httpEvent(" delete ", ""))
		require.NoError(t, err)
		assert.Equal(t, "DELETE", req.Method)
	})

	t.Run("PathFallback", func(t *testing.T) {
		event := httpEvent("GET", "")
		event.RawPath = ""
		event.RequestContext.HTTP.Path = "/news"

		req, err := FromHTTPAPIEvent(event)
		require.NoError(t, err)
		assert.Equal(t, "/news", req.Path)
	})

	t.Run("Base64Body", func(t *testing.T) {
		event := httpEvent("POST", base64.StdEncoding.EncodeToString([]byte(`{"start_date":"2024-01-01"}`)))
		event.IsBase64Encoded = true

		req, err := FromHTTPAPIEvent(event)
		require.NoError(t, err)
		assert.Equal(t, `{"start_date":"2024-01-01"}`, string(req.Body))
	})

	t.Run("InvalidBase64Body", func(t *testing.T) {
		event := httpEvent("POST", "%%%not-base64")
		event.IsBase64Encoded = true

		_, err := FromHTTPAPIEvent(event)
		assert.Error(t, err)
	})
}

func TestToHTTPAPIResponse(t *testing.T) {
	resp := ToHTTPAPIResponse(&Response{
		StatusCode: 405,
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Body:       []byte(`{"news_items":[],"error_message":"method not allowed"}`),
	})

	assert.Equal(t, 405, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Headers["Content-Type"])
	assert.Equal(t, `{"news_items":[],"error_message":"method not allowed"}`, resp.Body)
	assert.False(t, resp.IsBase64Encoded)
}
