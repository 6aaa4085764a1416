package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/redis"
	"github.com/honeynil/CampusMarket/internal/models"
)

// productCache keeps product rows in Redis for the detail page. Every write
// path that changes a product deletes its key after commit.
type productCache struct {
	client redis.RedisClient
}

func (c productCache) get(ctx context.Context, id int64) (*models.Product, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, redis.ProductKey(id))
	if err != nil {
		if !errors.Is(err, redis.ErrKeyNotFound) {
			slog.Warn("failed to read product cache", "product_id", id, "error", err)
		}
		return nil, false
	}
	var p models.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.Warn("failed to decode cached product", "product_id", id, "error", err)
		return nil, false
	}
	return &p, true
}

func (c productCache) put(ctx context.Context, p *models.Product) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		slog.Error("failed to marshal product", "product_id", p.ID, "error", err)
		return
	}
	// NX keeps a slow reader from replacing a fresher fill.
	if _, err := c.client.SetNX(ctx, redis.ProductKey(p.ID), string(raw), redis.ProductCacheTTL); err != nil {
		slog.Warn("failed to cache product", "product_id", p.ID, "error", err)
	}
}

func (c productCache) invalidate(ctx context.Context, ids ...int64) {
	if c.client == nil {
		return
	}
	for _, id := range ids {
		if err := c.client.Del(ctx, redis.ProductKey(id)); err != nil {
			slog.Warn("failed to invalidate product cache", "product_id", id, "error", err)
		}
	}
}
