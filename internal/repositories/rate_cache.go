package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/cambix/currency-conversion-api/internal/logger"
)

// RateCacheRepository keeps resolved pair rates in Redis with a TTL so hot
// pairs skip both the store and the external providers. Values are stored as
// "rate|source" so the source survives the round trip.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{client: client, exp: expiration}
}

func cacheKey(fromCurrency, toCurrency string) string {
	return fmt.Sprintf("rate:%s:%s", fromCurrency, toCurrency)
}

// Get fetches a cached rate and its source for a pair; a miss is an error.
func (r *RateCacheRepository) Get(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, string, error) {
	key := cacheKey(fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, "", fmt.Errorf("rate not cached for %s->%s", fromCurrency, toCurrency)
		}
		logger.Log.Errorw("rate cache get failed", "key", key, "error", err)
		return decimal.Zero, "", err
	}

	rateStr, source, found := strings.Cut(val, "|")
	if !found {
		logger.Log.Errorw("rate cache holds malformed value", "key", key, "value", val)
		return decimal.Zero, "", fmt.Errorf("malformed cache value for %s", key)
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		logger.Log.Errorw("rate cache holds malformed rate", "key", key, "value", val, "error", err)
		return decimal.Zero, "", err
	}

	return rate, source, nil
}

// Set caches a pair rate with the repository's expiration.
func (r *RateCacheRepository) Set(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal, source string) error {
	key := cacheKey(fromCurrency, toCurrency)
	err := r.client.Set(ctx, key, rate.String()+"|"+source, r.exp).Err()

	logger.Log.Infow("rate cache set", "key", key, "rate", rate, "source", source, "error", err)

	return err
}
