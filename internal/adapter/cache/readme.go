package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReadmeRedisCache keeps README text in Redis under a namespace prefix.
type ReadmeRedisCache struct {
	cmd       redis.Cmdable
	namespace string
}

func NewReadmeRedisCache(cmd redis.Cmdable) *ReadmeRedisCache {
	return &ReadmeRedisCache{cmd: cmd, namespace: "portfolio:"}
}

// NewRedisClient builds a client for addr and checks it is reachable.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *ReadmeRedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.cmd.Get(ctx, c.namespace+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *ReadmeRedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.cmd.Set(ctx, c.namespace+key, value, ttl).Err()
}
