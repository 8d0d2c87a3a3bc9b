package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/qkart/commerce-api/internal/api/metrics"
	"github.com/qkart/commerce-api/internal/core/domain"
	"github.com/qkart/commerce-api/internal/core/ports"
)

// ProductCache is a read-through cache in front of the product catalog.
// Products are immutable from the cart's perspective (line items snapshot
// price at add time), so serving a cached copy never changes a business
// outcome. Cart documents are never cached here or anywhere else.
//
// A Redis outage degrades to direct catalog reads; it never fails a request.
type ProductCache struct {
	client *redis.Client
	source ports.ProductCatalog
	ttl    time.Duration
	log    zerolog.Logger
}

func NewProductCache(client *redis.Client, source ports.ProductCatalog, ttl time.Duration, log zerolog.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ProductCache{client: client, source: source, ttl: ttl, log: log}
}

func (c *ProductCache) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	payload, err := c.client.Get(ctx, c.key(id)).Result()
	if err == nil {
		var p domain.Product
		if jerr := json.Unmarshal([]byte(payload), &p); jerr == nil {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return &p, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("product_id", id).Msg("product cache read failed, falling back to catalog")
	}
	metrics.ProductCacheTotal.WithLabelValues("miss").Inc()

	p, err := c.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, jerr := json.Marshal(p); jerr == nil {
		if serr := c.client.Set(ctx, c.key(p.ID), raw, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Str("product_id", p.ID).Msg("failed to set product cache entry")
		}
	}
	return p, nil
}

func (c *ProductCache) key(id string) string {
	return fmt.Sprintf("product:%s", id)
}
