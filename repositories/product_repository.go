package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ansh-apparels/database"
	"ansh-apparels/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db database.DBTX
}

func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, slug, price, category, sizes, images`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var rawSizes []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Category, &rawSizes, &p.Images); err != nil {
		return nil, err
	}

	var sizes interface{}
	if len(rawSizes) > 0 {
		if err := json.Unmarshal(rawSizes, &sizes); err != nil {
			return nil, fmt.Errorf("decode sizes of product %d: %w", p.ID, err)
		}
	}
	p.Sizes = models.NormalizeSizes(sizes)

	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	p, err := scanProduct(row)
	return p, translateError(err)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	return p, translateError(err)
}

// Create assigns the next sequential id (current max + 1).
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, slug, price, category, sizes, images, created_at, updated_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, NOW(), NOW() FROM products
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		product.Name, product.Slug, product.Price, product.Category, nonNilSizes(product.Sizes), nonNilStrings(product.Images),
	).Scan(&product.ID)
	return translateError(err)
}

func (r *ProductRepository) Update(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	sets := []string{}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Slug != nil {
		set("slug", *patch.Slug)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Sizes != nil {
		set("sizes", patch.Sizes)
	}
	if patch.Images != nil {
		set("images", patch.Images)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), productColumns)

	p, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	return p, translateError(err)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nonNilSizes(sizes []models.ProductSize) []models.ProductSize {
	if sizes == nil {
		return []models.ProductSize{}
	}
	return sizes
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
