package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vietanh2810/evote-api/internal/config"
)

// OpenRedis connects to redis with short timeouts. It returns a nil client when no address
// is configured.
func OpenRedis(ctx context.Context, conf *config.RedisConfig) (*redis.Client, error) {
	if conf == nil || conf.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         conf.Addr,
		Password:     conf.Password,
		DB:           conf.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping -> %w", err)
	}

	zap.L().Info("connected to redis", zap.String("addr", conf.Addr))

	return client, nil
}
