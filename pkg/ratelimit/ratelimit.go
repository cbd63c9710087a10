package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter keeps one cooldown window per user. A nil Redis client never cools down.
type Limiter struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
	}
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (l *Limiter) key(userID uuid.UUID) string {
	return l.prefix + ":" + userID.String()
}

// Cooling reports whether the user is still inside a window started by Hit.
// It never takes the slot itself. Redis failures are logged and reported as not cooling.
func (l *Limiter) Cooling(ctx context.Context, userID uuid.UUID) (bool, error) {
	if l == nil || l.client == nil {
		return false, nil
	}
	n, err := l.client.Exists(ctx, l.key(userID)).Result()
	if err != nil {
		zap.L().Error("cooldown check failed", zap.Error(err))
		return false, err
	}
	return n > 0, nil
}

// Hit starts a window for the user, replacing any running one.
func (l *Limiter) Hit(ctx context.Context, userID uuid.UUID, window time.Duration) error {
	if l == nil || l.client == nil || window <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, l.key(userID), time.Now().Unix(), window).Err(); err != nil {
		zap.L().Error("can't start cooldown", zap.Error(err))
		return err
	}
	return nil
}
