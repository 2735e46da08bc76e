// Package cache provides Redis-backed cross-process coordination.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sendhur-chits/backend/config"
	"github.com/sendhur-chits/backend/internal/application/adapter"
)

// NewRedisClient creates a Redis client from the application configuration.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "db", opts.DB)

	return client, nil
}

// reminderGate implements adapter.ReminderGate on Redis. A SETNX per
// member and day guarantees at most one due reminder per member per
// day across all API instances.
type reminderGate struct {
	client *redis.Client
}

// NewReminderGate creates a Redis-backed reminder gate.
func NewReminderGate(client *redis.Client) adapter.ReminderGate {
	return &reminderGate{client: client}
}

func (g *reminderGate) FirstToday(ctx context.Context, memberID uuid.UUID) (bool, error) {
	now := time.Now().UTC()
	key := fmt.Sprintf("due-reminder:%s:%s", now.Format("2006-01-02"), memberID)

	// Expire at the next UTC midnight so the slot frees with the new day.
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)

	claimed, err := g.client.SetNX(ctx, key, "1", time.Until(midnight)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim reminder slot: %w", err)
	}

	return claimed, nil
}
