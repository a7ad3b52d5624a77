package cache

import (
	"context"
	"testing"
	"time"

	"go-order-tracker/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNoop_AlwaysMisses(t *testing.T) {
	var c ProductCache = Noop{}
	c.SetProducts(context.Background(), []model.Product{{Code: "kaos_polos_merah"}})

	products, ok := c.GetProducts(context.Background())
	assert.False(t, ok)
	assert.Nil(t, products)
}

func TestRedisProductCache_UnreachableFallsBack(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })

	c := NewRedisProductCache(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.SetProducts(ctx, []model.Product{{Code: "kaos_polos_merah"}})
		c.Invalidate(ctx)
	})
	_, ok := c.GetProducts(ctx)
	assert.False(t, ok)
}
