package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
)

// SearchCacheRepository caches external book-search results in Redis so
// repeated queries skip the upstream API.
type SearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSearchCacheRepository creates a cache repository with the given TTL.
func NewSearchCacheRepository(client *redis.Client, expiration time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{client: client, exp: expiration}
}

// ErrCacheMiss is returned when no cached results exist for a query.
var ErrCacheMiss = fmt.Errorf("search results not in cache")

// GetResults fetches cached search results for a query.
func (r *SearchCacheRepository) GetResults(ctx context.Context, query string) ([]models.BookResult, error) {
	key := "book_search:" + query

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		logger.Log.Errorw("search cache read failed", "key", key, "error", err)
		return nil, err
	}

	var results []models.BookResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		logger.Log.Errorw("search cache entry malformed", "key", key, "error", err)
		return nil, err
	}
	return results, nil
}

// SetResults stores search results for a query with the configured TTL.
func (r *SearchCacheRepository) SetResults(ctx context.Context, query string, results []models.BookResult) error {
	key := "book_search:" + query

	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, payload, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("search cache write failed", "key", key, "error", err)
	}
	return err
}
