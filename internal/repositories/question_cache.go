package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/club-polls/internal/logger"
)

// ErrCacheMiss is returned when the requested entry is not cached.
var ErrCacheMiss = errors.New("cache miss")

// QuestionCacheRepository caches the texts of the latest questions in Redis.
type QuestionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached entries
}

// NewQuestionCacheRepository creates a new cache repository with the given TTL.
func NewQuestionCacheRepository(client *redis.Client, expiration time.Duration) *QuestionCacheRepository {
	return &QuestionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func latestKey(limit int) string {
	return fmt.Sprintf("polls:latest_questions:%d", limit)
}

// GetLatestTexts returns the cached texts for the given limit, or ErrCacheMiss.
func (r *QuestionCacheRepository) GetLatestTexts(ctx context.Context, limit int) ([]string, error) {
	key := latestKey(limit)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var texts []string
	if err := json.Unmarshal([]byte(val), &texts); err != nil {
		logger.Log.Infow("cache get", "key", key, "value", val, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "result", len(texts), "error", nil)
	return texts, nil
}

// SetLatestTexts caches the texts for the given limit.
func (r *QuestionCacheRepository) SetLatestTexts(ctx context.Context, limit int, texts []string) error {
	key := latestKey(limit)

	data, err := json.Marshal(texts)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "result", len(texts), "error", err)

	return err
}
