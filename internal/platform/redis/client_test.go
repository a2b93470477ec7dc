package redis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
)

func TestPing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer mock.ClearExpect()

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, redisstore.Ping(context.Background(), client))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	err := redisstore.Ping(context.Background(), client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: ping failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := redisstore.NewClient(context.Background(), "://not-a-url", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: invalid URL")
}
