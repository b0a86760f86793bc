package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/quickcart/pkg/config"
	"github.com/go-redis/redis/v8"
)

type RedisRepository struct {
	client  *redis.Client
	roleTTL time.Duration
}

func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	return NewRedisRepositoryWithClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}), cfg.RoleTTL)
}

func NewRedisRepositoryWithClient(client *redis.Client, roleTTL time.Duration) *RedisRepository {
	if roleTTL <= 0 {
		roleTTL = 10 * time.Minute
	}
	return &RedisRepository{client: client, roleTTL: roleTTL}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func roleKey(email string) string {
	return fmt.Sprintf("role:%s", email)
}

// GetRole returns the cached role for email. ok is false on a cache miss.
func (r *RedisRepository) GetRole(ctx context.Context, email string) (role string, ok bool, err error) {
	role, err = r.client.Get(ctx, roleKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return role, true, nil
}

func (r *RedisRepository) SetRole(ctx context.Context, email, role string) error {
	return r.client.Set(ctx, roleKey(email), role, r.roleTTL).Err()
}

func (r *RedisRepository) InvalidateRole(ctx context.Context, email string) error {
	return r.client.Del(ctx, roleKey(email)).Err()
}
