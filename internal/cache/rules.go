// Package cache fronts the rule store with a Redis snapshot cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/hotel-pricing/internal/domain"
	"github.com/pkordes/hotel-pricing/internal/repo"
)

const generationKey = "pricing:rules:generation"

// RuleCache is a repo.PriceRuleRepo that serves ListActive from Redis.
//
// Snapshots are stored per hotel under a key that embeds a generation
// counter. Every write through the cache bumps the counter after the
// underlying write succeeds, so a reader never picks up a snapshot taken
// before a change it could observe in Postgres. Old generations expire via
// the TTL. Redis errors are logged and the call falls through to Postgres.
type RuleCache struct {
	next   repo.PriceRuleRepo
	client redis.Cmdable
	ttl    time.Duration
	log    *slog.Logger
}

// compile-time check: RuleCache must satisfy repo.PriceRuleRepo.
var _ repo.PriceRuleRepo = (*RuleCache)(nil)

// NewRuleCache wraps next with a snapshot cache stored in client.
func NewRuleCache(next repo.PriceRuleRepo, client redis.Cmdable, ttl time.Duration, log *slog.Logger) *RuleCache {
	return &RuleCache{next: next, client: client, ttl: ttl, log: log}
}

// ListActive returns the cached snapshot for hotelID, loading and storing
// it on a miss.
func (c *RuleCache) ListActive(ctx context.Context, hotelID uuid.UUID) ([]domain.PriceRule, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "rule cache unavailable", "op", "generation", "error", err)
		return c.next.ListActive(ctx, hotelID)
	}

	key := snapshotKey(gen, hotelID)
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rules []domain.PriceRule
		decodeErr := json.Unmarshal(raw, &rules)
		if decodeErr == nil {
			return rules, nil
		}
		c.log.WarnContext(ctx, "rule cache entry corrupt", "key", key, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "rule cache unavailable", "op", "get", "error", err)
		return c.next.ListActive(ctx, hotelID)
	}

	rules, err := c.next.ListActive(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	raw, err = json.Marshal(rules)
	if err != nil {
		return nil, fmt.Errorf("cache.RuleCache.ListActive: encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "rule cache store failed", "key", key, "error", err)
	}
	return rules, nil
}

func (c *RuleCache) Create(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error) {
	created, err := c.next.Create(ctx, rule)
	if err != nil {
		return domain.PriceRule{}, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *RuleCache) GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error) {
	return c.next.GetByID(ctx, id)
}

func (c *RuleCache) ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) ([]domain.PriceRule, int64, error) {
	return c.next.ListPaged(ctx, f, p)
}

func (c *RuleCache) Update(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error) {
	updated, err := c.next.Update(ctx, rule)
	if err != nil {
		return domain.PriceRule{}, err
	}
	c.invalidate(ctx)
	return updated, nil
}

func (c *RuleCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate moves readers to a new generation. A failure leaves stale
// snapshots visible for at most one TTL.
func (c *RuleCache) invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.log.WarnContext(ctx, "rule cache invalidation failed", "error", err)
	}
}

func snapshotKey(gen int64, hotelID uuid.UUID) string {
	return fmt.Sprintf("pricing:rules:g%d:%s", gen, hotelID)
}
