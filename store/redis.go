package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPort persists each collection as a string value under its key,
// for deployments that want the snapshots off the local disk.
type RedisPort struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisPort(addr string) (*RedisPort, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	fmt.Println("✅ Connected to Redis")

	return &RedisPort{client: client, ctx: ctx}, nil
}

func (p *RedisPort) Load(key string) ([]byte, error) {
	data, err := p.client.Get(p.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *RedisPort) Save(key string, data []byte) error {
	return p.client.Set(p.ctx, key, data, 0).Err()
}
