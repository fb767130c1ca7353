package libs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ansh-apparels/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	productListKey     = "products_list:all"
	productListPattern = "products_list*"
	ProductListTTL     = 5 * time.Minute
)

// RedisCache caches the public product list. A nil client turns every call
// into a miss, which is how the app runs without Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, ttl: ProductListTTL}
}

func (c *RedisCache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("product cache read failed")
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Warn().Err(err).Msg("product cache entry is corrupt")
		return nil, false
	}
	return products, true
}

func (c *RedisCache) SetProducts(ctx context.Context, products []models.Product) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productListKey, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("product cache write failed")
	}
}

func (c *RedisCache) InvalidateProducts(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, productListPattern, 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
