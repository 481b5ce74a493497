package redisimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/cache"
	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Logger logger.Logger
}

type RedisImpl struct {
	rdb    *redis.Client
	logger logger.Logger
}

// New creates a Redis-backed store from a redis:// URL and manages the
// connection lifecycle.
func New(opts Opts, url string) (*RedisImpl, error) {
	cfg, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(cfg)

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to ping redis: %w", err)
			}
			opts.Logger.Info("Connected to redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	return &RedisImpl{rdb: rdb, logger: opts.Logger}, nil
}

var _ cache.Store = (*RedisImpl)(nil)

func (r *RedisImpl) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.ErrCacheUnavailable, err.Error())
	}
	return val, true, nil
}

func (r *RedisImpl) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCacheUnavailable, err.Error())
	}
	return nil
}

func (r *RedisImpl) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	ok, err := r.rdb.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrCacheUnavailable, err.Error())
	}
	return ok, nil
}
