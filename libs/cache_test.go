package libs

import (
	"context"
	"testing"

	"ansh-apparels/models"

	"github.com/stretchr/testify/assert"
)

func TestRedisCacheWithoutClientIsAlwaysAMiss(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisCache(nil)

	cache.SetProducts(ctx, []models.Product{{ID: 1, Name: "Tee"}})
	cache.InvalidateProducts(ctx)

	products, ok := cache.GetProducts(ctx)
	assert.False(t, ok)
	assert.Nil(t, products)
}
