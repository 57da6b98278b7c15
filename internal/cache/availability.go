// Package cache holds the Redis-backed availability cache. Booked time
// labels per (date, stylist) are the only hot read path: the date picker
// refetches them on every date change.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sahelnejat/Luna/internal/config"
	"github.com/sahelnejat/Luna/internal/logger"
)

const bookedTTL = 60 * time.Second

// NewRedisClient connects to Redis, or returns nil when no address is
// configured. A nil client disables caching entirely.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Get().Warn("redis unavailable, availability cache disabled",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return nil
	}
	return rdb
}

type Availability struct {
	rdb *redis.Client
}

// NewAvailability wraps a Redis client; rdb may be nil, in which case every
// lookup misses and writes are dropped.
func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{rdb: rdb}
}

func bookedKey(date string, stylistID int) string {
	return fmt.Sprintf("booked:%s:%d", date, stylistID)
}

func (c *Availability) GetBookedTimes(ctx context.Context, date string, stylistID int) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, bookedKey(date, stylistID)).Result()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (c *Availability) SetBookedTimes(ctx context.Context, date string, stylistID int, times []string) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, bookedKey(date, stylistID), raw, bookedTTL)
}

// InvalidateDate drops every cached entry for a date, across all stylist
// filters. Called after a booking is created or cancelled on that date.
func (c *Availability) InvalidateDate(ctx context.Context, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, fmt.Sprintf("booked:%s:*", date)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
