package lambda

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpa-news-api/internal/config"
	"hpa-news-api/pkg/server"
)

func countingLoader(calls *int, failures int) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		*calls++
		if *calls <= failures {
			return nil, errors.New("config unavailable")
		}
		return &config.Config{
			Environment: "test",
			Port:        "8081",
			NewsAPI: config.NewsAPIConfig{
				BaseURL: "http://127.0.0.1:1/newsapi.ashx",
				Timeout: time.Second,
			},
		}, nil
	}
}

func quietOption() server.Option {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return server.WithLogger(log)
}

func TestConnectionManagerReusesContainer(t *testing.T) {
	calls := 0
	cm := NewConnectionManager(countingLoader(&calls, 0), quietOption())
	assert.False(t, cm.IsHealthy())

	first, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	second, err := cm.GetContainer(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.True(t, cm.IsHealthy())
}

func TestConnectionManagerRetriesFailedInit(t *testing.T) {
	calls := 0
	cm := NewConnectionManager(countingLoader(&calls, 1), quietOption())

	_, err := cm.GetContainer(context.Background())
	require.Error(t, err)
	assert.False(t, cm.IsHealthy())

	container, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, container)
	assert.Equal(t, 2, calls)
}

func TestConnectionManagerCanceledContext(t *testing.T) {
	calls := 0
	cm := NewConnectionManager(countingLoader(&calls, 0), quietOption())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cm.GetContainer(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestConnectionManagerCleanup(t *testing.T) {
	calls := 0
	cm := NewConnectionManager(countingLoader(&calls, 0), quietOption())

	_, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())

	_, err = cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
