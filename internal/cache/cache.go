package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mercato-be/internal/config"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

// Client wraps the go-redis client.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis using the provided configuration. A Redis that is
// down is logged but not fatal: callers treat the cache as best-effort.
func New(cfg *config.Config, log *zap.Logger) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("unable to reach redis", zap.Error(err))
	} else {
		log.Info("connected to redis")
	}

	return &Client{rdb: rdb}
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return errors.New("redis client not configured")
	}
	return c.rdb.Ping(ctx).Err()
}

// Close closes the client.
func (c *Client) Close() {
	if c != nil && c.rdb != nil {
		_ = c.rdb.Close()
	}
}
