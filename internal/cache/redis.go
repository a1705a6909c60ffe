package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"urlpro/internal/types"
)

const keyPrefix = "link:"

// Cache keeps redirect targets keyed by slug. A miss is reported as redis.Nil.
type Cache struct {
	rdb *redis.Client
}

func ConnectRedis(ctx context.Context, addr, password string, db int) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{rdb: rdb}, nil
}

func (c *Cache) Get(ctx context.Context, slug string) (*types.LinkCache, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+slug).Bytes()
	if err != nil {
		return nil, err
	}
	var link types.LinkCache
	if err := json.Unmarshal(raw, &link); err != nil {
		return nil, fmt.Errorf("decode cached link %q: %w", slug, err)
	}
	return &link, nil
}

func (c *Cache) Set(ctx context.Context, slug string, link *types.LinkCache, expiration time.Duration) error {
	raw, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+slug, raw, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = keyPrefix + s
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
