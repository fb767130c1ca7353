package services

import (
	"context"
	"math"
	"testing"

	"ansh-apparels/models"
	"ansh-apparels/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func validProductRequest(slug string) models.CreateProductRequest {
	return models.CreateProductRequest{
		Name:     "Linen Shirt",
		Slug:     slug,
		Price:    floatPtr(1499),
		Category: models.CategoryMen,
		Sizes:    []interface{}{"S", "M", "m"},
		Images:   []string{"/api/files/0b0f3c2e-8f4c-4f35-9c32-7b3a0f6d1e22"},
	}
}

type productFixture struct {
	svc    *ProductService
	store  *testutil.ProductStore
	cache  *testutil.ProductCache
	bucket *testutil.Bucket
}

func newProductFixture(seed ...models.Product) productFixture {
	f := productFixture{
		store:  testutil.NewProductStore(seed...),
		cache:  &testutil.ProductCache{},
		bucket: testutil.NewBucket(),
	}
	files := NewFileService(f.bucket, nil, 5*1024*1024)
	f.svc = NewProductService(f.store, f.cache, files)
	return f
}

func TestCreateProductAssignsNextID(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(models.Product{ID: 7, Slug: "old"})

	product, err := f.svc.Create(ctx, validProductRequest("linen-shirt"))
	require.NoError(t, err)

	assert.Equal(t, int64(8), product.ID)
	assert.Equal(t, []models.ProductSize{{Label: "S", Quantity: 999}, {Label: "M", Quantity: 999}}, product.Sizes)
	assert.Equal(t, 1, f.cache.Invalidations)
}

func TestCreateProductValidation(t *testing.T) {
	f := newProductFixture()

	mutations := map[string]func(*models.CreateProductRequest){
		"blank name":     func(r *models.CreateProductRequest) { r.Name = "  " },
		"blank slug":     func(r *models.CreateProductRequest) { r.Slug = "" },
		"missing price":  func(r *models.CreateProductRequest) { r.Price = nil },
		"infinite price": func(r *models.CreateProductRequest) { r.Price = floatPtr(math.Inf(1)) },
		"bad category":   func(r *models.CreateProductRequest) { r.Category = "kids" },
		"no sizes":       func(r *models.CreateProductRequest) { r.Sizes = nil },
		"no images":      func(r *models.CreateProductRequest) { r.Images = []string{" "} },
	}

	for name, mutate := range mutations {
		req := validProductRequest("tee")
		mutate(&req)

		_, err := f.svc.Create(context.Background(), req)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr, name)
		assert.Equal(t, "Invalid product data", verr.Message, name)
	}
}

func TestCreateProductDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture()
	_, err := f.svc.Create(ctx, validProductRequest("tee"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, validProductRequest("tee"))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Slug already exists", verr.Message)
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(models.Product{ID: 1, Name: "Tee", Slug: "tee", Price: 499, Category: models.CategoryMen})

	product, err := f.svc.Update(ctx, 1, models.UpdateProductRequest{
		Price: floatPtr(599),
		Sizes: []interface{}{map[string]interface{}{"label": "L", "inStock": false}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tee", product.Name)
	assert.Equal(t, 599.0, product.Price)
	assert.Equal(t, []models.ProductSize{{Label: "L", Quantity: 0}}, product.Sizes)

	_, err = f.svc.Update(ctx, 1, models.UpdateProductRequest{Category: strPtr("kids")})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.svc.Update(ctx, 42, models.UpdateProductRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateProductRejectsEmptyLists(t *testing.T) {
	ctx := context.Background()
	seed := models.Product{ID: 1, Name: "Tee", Slug: "tee", Price: 499, Category: models.CategoryMen,
		Sizes: []models.ProductSize{{Label: "M", Quantity: 2}}, Images: []string{"a.png"}}
	f := newProductFixture(seed)

	tests := []struct {
		name string
		req  models.UpdateProductRequest
	}{
		{name: "empty sizes", req: models.UpdateProductRequest{Sizes: []interface{}{}}},
		{name: "sizes without labels", req: models.UpdateProductRequest{Sizes: []interface{}{map[string]interface{}{"label": " "}}}},
		{name: "empty images", req: models.UpdateProductRequest{Images: []string{}}},
		{name: "blank images", req: models.UpdateProductRequest{Images: []string{"  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Update(ctx, 1, tt.req)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Invalid product data", verr.Message)
		})
	}

	product, err := f.svc.GetBySlug(ctx, "tee")
	require.NoError(t, err)
	assert.Equal(t, seed.Sizes, product.Sizes)
	assert.Equal(t, seed.Images, product.Images)
}

func TestListUsesCache(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(models.Product{ID: 2, Slug: "b"}, models.Product{ID: 1, Slug: "a"})

	first, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first[0].ID)

	_, err = f.svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.Hits)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(models.Product{ID: 1, Slug: "a"})

	require.NoError(t, f.svc.Delete(ctx, 1))
	assert.ErrorIs(t, f.svc.Delete(ctx, 1), models.ErrNotFound)
}

func TestDeleteAllCleansReferencedImages(t *testing.T) {
	ctx := context.Background()
	const kept = "0b0f3c2e-8f4c-4f35-9c32-7b3a0f6d1e22"
	const unrelated = "11111111-2222-4333-8444-555555555555"
	const gone = "99999999-2222-4333-8444-555555555555"

	f := newProductFixture(
		models.Product{ID: 1, Slug: "a", Images: []string{"https://api.example.com/api/files/" + kept, "/api/files/" + gone}},
		models.Product{ID: 2, Slug: "b", Images: []string{"/api/files/" + kept, "https://cdn.example.com/x.png"}},
	)
	f.bucket.Put(kept, "a.png", "image/png", []byte("png"))
	f.bucket.Put(unrelated, "b.png", "image/png", []byte("png"))

	deleted, err := f.svc.DeleteAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, []string{kept}, f.bucket.Deleted)
	assert.True(t, f.bucket.Has(unrelated))

	remaining, err := f.store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
