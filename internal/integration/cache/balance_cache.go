// Package cache implements the balance summary cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
)

// DefaultTTL bounds staleness for summaries whose invalidation was missed,
// for example when a write crashed between commit and cache invalidation.
const DefaultTTL = 15 * time.Minute

// RedisBalanceCache stores JSON-encoded balance summaries in Redis. Every
// key is namespaced under its group so a single scan can invalidate all
// summaries the group's expenses feed into.
type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBalanceCache creates a new RedisBalanceCache instance. A
// non-positive ttl falls back to DefaultTTL.
func NewRedisBalanceCache(client *redis.Client, ttl time.Duration) *RedisBalanceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisBalanceCache{
		client: client,
		ttl:    ttl,
	}
}

// GetTripSummary retrieves a cached per-trip summary. Returns nil without
// error on a cache miss.
func (c *RedisBalanceCache) GetTripSummary(ctx context.Context, groupID, tripID, memberID uuid.UUID) (*entity.MemberBalanceSummary, error) {
	return c.get(ctx, tripKey(groupID, tripID, memberID))
}

// SetTripSummary stores a per-trip summary.
func (c *RedisBalanceCache) SetTripSummary(ctx context.Context, groupID, tripID, memberID uuid.UUID, summary *entity.MemberBalanceSummary) error {
	return c.set(ctx, tripKey(groupID, tripID, memberID), summary)
}

// GetGroupSummary retrieves a cached per-group summary. Returns nil without
// error on a cache miss.
func (c *RedisBalanceCache) GetGroupSummary(ctx context.Context, groupID, memberID uuid.UUID) (*entity.MemberBalanceSummary, error) {
	return c.get(ctx, groupKey(groupID, memberID))
}

// SetGroupSummary stores a per-group summary.
func (c *RedisBalanceCache) SetGroupSummary(ctx context.Context, groupID, memberID uuid.UUID, summary *entity.MemberBalanceSummary) error {
	return c.set(ctx, groupKey(groupID, memberID), summary)
}

// InvalidateGroup drops every cached summary for the group and its trips.
func (c *RedisBalanceCache) InvalidateGroup(ctx context.Context, groupID uuid.UUID) error {
	pattern := fmt.Sprintf("balance:group:%s:*", groupID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan balance keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete balance keys: %w", err)
	}

	return nil
}

func (c *RedisBalanceCache) get(ctx context.Context, key string) (*entity.MemberBalanceSummary, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary entity.MemberBalanceSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		// A stale or corrupted entry is treated as a miss.
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}

	return &summary, nil
}

func (c *RedisBalanceCache) set(ctx context.Context, key string, summary *entity.MemberBalanceSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached summary: %w", err)
	}

	return nil
}

func tripKey(groupID, tripID, memberID uuid.UUID) string {
	return fmt.Sprintf("balance:group:%s:trip:%s:member:%s", groupID, tripID, memberID)
}

func groupKey(groupID, memberID uuid.UUID) string {
	return fmt.Sprintf("balance:group:%s:member:%s", groupID, memberID)
}

var _ adapter.BalanceCache = (*RedisBalanceCache)(nil)
