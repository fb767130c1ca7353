package repositories

import (
	"context"
	"regexp"
	"testing"

	"ansh-apparels/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "name", "slug", "price", "category", "sizes", "images"}

func TestProductCreateAssignsNextID(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	sizes := []models.ProductSize{{Label: "M", Quantity: 3}}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, NOW(), NOW() FROM products")).
		WithArgs("Linen Shirt", "linen-shirt", 1499.0, "men", sizes, []string{}).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(8)))

	product := &models.Product{Name: "Linen Shirt", Slug: "linen-shirt", Price: 1499, Category: "men", Sizes: sizes}
	require.NoError(t, repo.Create(context.Background(), product))
	assert.Equal(t, int64(8), product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCreateDuplicateSlug(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "products_slug_key"})

	err := repo.Create(context.Background(), &models.Product{Name: "Linen Shirt", Slug: "linen-shirt"})
	require.ErrorIs(t, err, models.ErrDuplicate)
	assert.Contains(t, err.Error(), "products_slug_key")
}

func TestProductFindBySlugNormalizesLegacySizes(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE slug = $1")).
		WithArgs("linen-shirt").
		WillReturnRows(mock.NewRows(productRowColumns).
			AddRow(int64(1), "Linen Shirt", "linen-shirt", 1499.0, "men", []byte(`["S","m","M"]`), nil))

	product, err := repo.FindBySlug(context.Background(), "linen-shirt")
	require.NoError(t, err)
	assert.Equal(t, []models.ProductSize{
		{Label: "S", Quantity: models.DefaultSizeQuantity},
		{Label: "m", Quantity: models.DefaultSizeQuantity},
	}, product.Sizes)
	assert.Equal(t, []string{}, product.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductFindBySlugMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE slug = $1")).
		WithArgs("nope").
		WillReturnRows(mock.NewRows(productRowColumns))

	_, err := repo.FindBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductUpdateSetsOnlyProvidedFields(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	name := "Linen Tee"
	price := 999.0
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET name = $1, price = $2, updated_at = NOW() WHERE id = $3 RETURNING")).
		WithArgs(name, price, int64(5)).
		WillReturnRows(mock.NewRows(productRowColumns).
			AddRow(int64(5), name, "linen-shirt", price, "men", []byte(`[{"label":"M","quantity":2}]`), []string{"a.png"}))

	product, err := repo.Update(context.Background(), 5, models.ProductPatch{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, name, product.Name)
	assert.Equal(t, []models.ProductSize{{Label: "M", Quantity: 2}}, product.Sizes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateUnknownID(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	category := "women"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET category = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(category, int64(99)).
		WillReturnRows(mock.NewRows(productRowColumns))

	_, err := repo.Update(context.Background(), 99, models.ProductPatch{Category: &category})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products")).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	deleted, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
