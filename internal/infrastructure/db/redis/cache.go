package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

const (
	coursesKeyPrefix = "cache:courses:"
	collectionsKey   = "cache:collections"
)

// CatalogCache caches list query results in Redis. Every operation is
// best-effort: a backend failure is logged and the caller falls through to
// the database.
// Course key format: cache:courses:<limit>:<sort_order>
type CatalogCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewCatalogCache(client *redis.Client, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

func (c *CatalogCache) GetCourses(ctx context.Context, filter ports.ListCoursesFilter) ([]*domain.Course, bool) {
	payload, err := c.client.Get(ctx, coursesKey(filter)).Bytes()
	if err != nil {
		return nil, false
	}
	var courses []*domain.Course
	if err := json.Unmarshal(payload, &courses); err != nil {
		return nil, false
	}
	return courses, true
}

func (c *CatalogCache) SetCourses(ctx context.Context, filter ports.ListCoursesFilter, courses []*domain.Course, ttl time.Duration) {
	payload, err := json.Marshal(courses)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, coursesKey(filter), payload, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("course cache write failed")
	}
}

// InvalidateCourses drops every cached course listing.
func (c *CatalogCache) InvalidateCourses(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, coursesKeyPrefix+"*", 100).Result()
		if err != nil {
			c.log.Warn().Err(err).Msg("course cache invalidation failed")
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Warn().Err(err).Msg("course cache invalidation failed")
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func (c *CatalogCache) GetCollections(ctx context.Context) ([]*domain.Collection, bool) {
	payload, err := c.client.Get(ctx, collectionsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var collections []*domain.Collection
	if err := json.Unmarshal(payload, &collections); err != nil {
		return nil, false
	}
	return collections, true
}

func (c *CatalogCache) SetCollections(ctx context.Context, collections []*domain.Collection, ttl time.Duration) {
	payload, err := json.Marshal(collections)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, collectionsKey, payload, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("collection cache write failed")
	}
}

func (c *CatalogCache) InvalidateCollections(ctx context.Context) {
	if err := c.client.Del(ctx, collectionsKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("collection cache invalidation failed")
	}
}

func coursesKey(filter ports.ListCoursesFilter) string {
	return fmt.Sprintf("%s%d:%s", coursesKeyPrefix, filter.Limit, filter.SortOrder)
}
