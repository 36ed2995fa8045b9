package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetpoint/core/config"
	"meetpoint/core/constants"
	"meetpoint/core/logger"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no entry exists for the requested key.
var ErrCacheMiss = errors.New("cache: miss")

// Cache stores computed recommendation snapshots keyed by meeting ID.
type Cache interface {
	SetRecommendation(ctx context.Context, meetingID string, payload []byte) error
	GetRecommendation(ctx context.Context, meetingID string) ([]byte, error)
	DeleteRecommendation(ctx context.Context, meetingID string) error
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and returns a recommendation cache.
func NewRedisCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)

	return &redisCache{
		client: client,
		ttl:    constants.RecommendationCacheTTL,
	}, nil
}

func (c *redisCache) key(meetingID string) string {
	return constants.RedisKeyRecommendation + meetingID
}

func (c *redisCache) SetRecommendation(ctx context.Context, meetingID string, payload []byte) error {
	return c.client.Set(ctx, c.key(meetingID), payload, c.ttl).Err()
}

func (c *redisCache) GetRecommendation(ctx context.Context, meetingID string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key(meetingID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

func (c *redisCache) DeleteRecommendation(ctx context.Context, meetingID string) error {
	return c.client.Del(ctx, c.key(meetingID)).Err()
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
