package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/travelapp/config"
	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a read-through cache for the flight catalog. Misses are
// reported as (nil, nil).
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), ttl)
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetSearch(ctx context.Context, origin, destination string, day time.Time) ([]domain.Flight, error) {
	var flights []domain.Flight
	ok, err := c.get(ctx, searchKey(origin, destination, day), &flights)
	if err != nil || !ok {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, origin, destination string, day time.Time, flights []domain.Flight) error {
	return c.set(ctx, searchKey(origin, destination, day), flights)
}

func (c *RedisCache) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	var flight domain.Flight
	ok, err := c.get(ctx, flightKey(id), &flight)
	if err != nil || !ok {
		return nil, err
	}
	return &flight, nil
}

func (c *RedisCache) SetFlight(ctx context.Context, flight *domain.Flight) error {
	return c.set(ctx, flightKey(flight.ID), flight)
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	if c.ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func searchKey(origin, destination string, day time.Time) string {
	return fmt.Sprintf("cache:flights:search:%s:%s:%s", origin, destination, day.Format(time.DateOnly))
}

func flightKey(id int64) string {
	return fmt.Sprintf("cache:flights:%d", id)
}
