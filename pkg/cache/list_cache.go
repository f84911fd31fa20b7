package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"grace-media/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ListCache is a read-through cache for list and detail query results.
// Each entity type owns a set of list keys so a mutation can drop every
// cached page/filter combination for that type in one pass. Cache errors
// are logged and treated as misses; the cache must never fail a request.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewListCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *ListCache {
	return &ListCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// FilterKey derives a stable cache key suffix from a filter struct.
func FilterKey(filters interface{}) string {
	data, err := json.Marshal(filters)
	if err != nil {
		return "unhashable"
	}
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("%x", h.Sum64())
}

func listKey(entity, filterKey string) string {
	return fmt.Sprintf("lists:%s:%s", entity, filterKey)
}

func listKeySet(entity string) string {
	return fmt.Sprintf("lists:%s:keys", entity)
}

func detailKey(entity, id string) string {
	return fmt.Sprintf("detail:%s:%s", entity, id)
}

// GetList loads a cached list result into dest. Returns false on miss.
func (c *ListCache) GetList(ctx context.Context, entity, filterKey string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, listKey(entity, filterKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed for %s: %v", entity, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("cache entry for %s is corrupt, dropping: %v", entity, err)
		c.client.Del(ctx, listKey(entity, filterKey))
		return false
	}
	return true
}

// SetList stores a list result and registers its key for invalidation.
func (c *ListCache) SetList(ctx context.Context, entity, filterKey string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed for %s: %v", entity, err)
		return
	}

	key := listKey(entity, filterKey)
	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, data, c.ttl)
	pipe.SAdd(ctx, listKeySet(entity), key)
	pipe.Expire(ctx, listKeySet(entity), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("cache write failed for %s: %v", entity, err)
	}
}

// GetDetail loads a cached single record into dest. Returns false on miss.
func (c *ListCache) GetDetail(ctx context.Context, entity, id string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, detailKey(entity, id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed for %s:%s: %v", entity, id, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.client.Del(ctx, detailKey(entity, id))
		return false
	}
	return true
}

func (c *ListCache) SetDetail(ctx context.Context, entity, id string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, detailKey(entity, id), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed for %s:%s: %v", entity, id, err)
	}
}

// InvalidateEntity drops every cached list result for an entity type.
// Called after any successful create/update/delete on that type.
func (c *ListCache) InvalidateEntity(ctx context.Context, entity string) {
	if c == nil || c.client == nil {
		return
	}

	keys, err := c.client.SMembers(ctx, listKeySet(entity)).Result()
	if err != nil {
		c.logger.Warn("cache invalidation failed for %s: %v", entity, err)
		return
	}

	keys = append(keys, listKeySet(entity))
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed for %s: %v", entity, err)
	}
}

// InvalidateDetail drops the cached single-record entry for an id.
func (c *ListCache) InvalidateDetail(ctx context.Context, entity, id string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, detailKey(entity, id)).Err(); err != nil {
		c.logger.Warn("cache invalidation failed for %s:%s: %v", entity, id, err)
	}
}
