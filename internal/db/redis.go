package db

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/IvanSaydyashev/AdEngine/internal/config/configs"
)

// NewRedisClient creates a Redis client from configuration and verifies
// connectivity with a 5 second ping. The caller must close the returned
// client when it is no longer needed.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
