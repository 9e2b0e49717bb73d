// Package cache は読み取り専用コンテンツ (問題・ドリル) のキャッシュです。
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss はキーが存在しないことを表します。
var ErrMiss = errors.New("cache miss")

type Cache interface {
	// Get は key の値を dst に JSON デコードします。無ければ ErrMiss。
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any) error
}

// --- Redis ---

type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

// NewRedisCache は接続を確認してから RedisCache を返します。
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "trade-practice:"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: opts.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) error {
	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s for cache: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// --- Noop ---

// Noop は常にミスするキャッシュ。Redis 未設定時に使う。
type Noop struct{}

func (Noop) Get(context.Context, string, any) error { return ErrMiss }
func (Noop) Set(context.Context, string, any) error { return nil }
