// Package cache keeps JSON snapshots of the approved-event listings in redis.
// A nil *EventCache is valid and disables caching entirely, so the services
// never depend on redis being configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/models"
)

type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *EventCache {
	if client == nil {
		return nil
	}
	return &EventCache{client: client, ttl: ttl}
}

// Keys embed a generation counter; Invalidate bumps it, making every cached
// listing unreachable at once instead of scanning for keys to delete.
func (c *EventCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, "events:gen").Int64()
	if err != nil {
		return 0
	}
	return gen
}

func (c *EventCache) pageKey(ctx context.Context, limit, offset int) string {
	return fmt.Sprintf("events:%d:page:%d:%d", c.generation(ctx), limit, offset)
}

func (c *EventCache) allKey(ctx context.Context) string {
	return fmt.Sprintf("events:%d:all", c.generation(ctx))
}

func (c *EventCache) GetPage(ctx context.Context, limit, offset int) ([]models.Event, bool) {
	if c == nil {
		return nil, false
	}
	return c.get(ctx, c.pageKey(ctx, limit, offset))
}

func (c *EventCache) SetPage(ctx context.Context, limit, offset int, events []models.Event) {
	if c == nil {
		return
	}
	c.set(ctx, c.pageKey(ctx, limit, offset), events)
}

func (c *EventCache) GetAll(ctx context.Context) ([]models.Event, bool) {
	if c == nil {
		return nil, false
	}
	return c.get(ctx, c.allKey(ctx))
}

func (c *EventCache) SetAll(ctx context.Context, events []models.Event) {
	if c == nil {
		return
	}
	c.set(ctx, c.allKey(ctx), events)
}

func (c *EventCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, "events:gen").Err(); err != nil {
		logrus.Warnf("event cache: invalidate: %v", err)
	}
}

func (c *EventCache) get(ctx context.Context, key string) ([]models.Event, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(data), &events); err != nil {
		return nil, false
	}
	return events, true
}

func (c *EventCache) set(ctx context.Context, key string, events []models.Event) {
	data, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logrus.Warnf("event cache: set %s: %v", key, err)
	}
}
