package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRateCacheRepository(rdb, 2*time.Second)

	t.Run("set and get keep rate and source", func(t *testing.T) {
		rate := decimal.RequireFromString("0.85")

		assert.NoError(t, repo.Set(ctx, "USD", "EUR", rate, "manual"))

		got, source, err := repo.Get(ctx, "USD", "EUR")
		assert.NoError(t, err)
		assert.True(t, got.Equal(rate))
		assert.Equal(t, "manual", source)
	})

	t.Run("get missing pair returns error", func(t *testing.T) {
		_, _, err := repo.Get(ctx, "ABC", "XYZ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate not cached")
	})

	t.Run("malformed value is rejected", func(t *testing.T) {
		assert.NoError(t, rdb.Set(ctx, "rate:USD:MXN", "18.50", 0).Err())

		_, _, err := repo.Get(ctx, "USD", "MXN")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "malformed cache value")
	})

	t.Run("cached value expires", func(t *testing.T) {
		rate := decimal.RequireFromString("1.5")

		assert.NoError(t, repo.Set(ctx, "GBP", "USD", rate, "manual"))

		time.Sleep(3 * time.Second)

		_, _, err := repo.Get(ctx, "GBP", "USD")
		assert.Error(t, err)
	})
}
