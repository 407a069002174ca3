package kvstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/pkg/kvstore"
)

// Requer um Redis real; defina TEST_REDIS_ADDR para executar.
func newClient(t *testing.T) *kvstore.RedisClient {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR não definido")
	}
	client, err := kvstore.NewRedisClient(addr)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCounterLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	_, err := client.GetInt(ctx, key)
	assert.ErrorIs(t, err, kvstore.ErrMiss)

	require.NoError(t, client.Set(ctx, key, 1, time.Minute))
	n, err := client.Incr(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := client.GetInt(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	require.NoError(t, client.Delete(ctx, key))
	_, err = client.Get(ctx, key)
	assert.ErrorIs(t, err, kvstore.ErrMiss)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := kvstore.NewRedisClient("127.0.0.1:1")
	assert.Error(t, err)
}
