package cache

import (
	"context"
	"encoding/json"
	"time"

	"go-order-tracker/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productsKey = "products:all"

// ProductCache stores the full product list. Misses and backend failures both
// report ok=false so callers fall back to the database.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]model.Product, bool)
	SetProducts(ctx context.Context, products []model.Product)
	Invalidate(ctx context.Context)
}

// Connect dials redis and verifies the connection with PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

type redisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisProductCache(client redis.Cmdable, ttl time.Duration, log *zap.Logger) ProductCache {
	return &redisProductCache{client: client, ttl: ttl, log: log}
}

func (c *redisProductCache) GetProducts(ctx context.Context) ([]model.Product, bool) {
	cached, err := c.client.Get(ctx, productsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("product cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(cached, &products); err != nil {
		c.log.Warn("product cache holds invalid data", zap.Error(err))
		return nil, false
	}
	return products, true
}

func (c *redisProductCache) SetProducts(ctx context.Context, products []model.Product) {
	b, err := json.Marshal(products)
	if err != nil {
		c.log.Warn("failed to encode product cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, productsKey, b, c.ttl).Err(); err != nil {
		c.log.Warn("product cache write failed", zap.Error(err))
	}
}

func (c *redisProductCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productsKey).Err(); err != nil {
		c.log.Warn("product cache invalidation failed", zap.Error(err))
	}
}

// Noop never caches.
type Noop struct{}

func (Noop) GetProducts(context.Context) ([]model.Product, bool) { return nil, false }
func (Noop) SetProducts(context.Context, []model.Product)        {}
func (Noop) Invalidate(context.Context)                          {}
