package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"ansh-apparels/models"
)

// ImageCleaner removes stored images that products point at.
type ImageCleaner interface {
	DeleteReferenced(ctx context.Context, imageURLs []string) int
}

type ProductService struct {
	products ProductStore
	cache    ProductCache
	images   ImageCleaner
}

func NewProductService(products ProductStore, cache ProductCache, images ImageCleaner) *ProductService {
	return &ProductService{products: products, cache: cache, images: images}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	if cached, ok := s.cache.GetProducts(ctx); ok {
		return cached, nil
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetProducts(ctx, products)
	return products, nil
}

// ListFresh skips the cache; the admin panel always sees the table as is.
func (s *ProductService) ListFresh(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, models.ErrNotFound
	}
	return s.products.FindBySlug(ctx, slug)
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:     strings.TrimSpace(req.Name),
		Slug:     strings.TrimSpace(req.Slug),
		Category: req.Category,
		Sizes:    models.NormalizeSizes(req.Sizes),
		Images:   cleanImages(req.Images),
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if product.Name == "" || product.Slug == "" || !validPrice(req.Price) ||
		!models.IsValidCategory(product.Category) || len(product.Sizes) == 0 || len(product.Images) == 0 {
		return nil, models.NewValidationError("Invalid product data")
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, duplicateProduct(err)
	}
	s.cache.InvalidateProducts(ctx)
	return product, nil
}

// Update applies only the fields present in req. Sizes are normalized the same
// way they are on create.
func (s *ProductService) Update(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error) {
	patch := models.ProductPatch{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, models.NewValidationError("Invalid product data")
		}
		patch.Name = &name
	}
	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if slug == "" {
			return nil, models.NewValidationError("Invalid product data")
		}
		patch.Slug = &slug
	}
	if req.Price != nil {
		if !validPrice(req.Price) {
			return nil, models.NewValidationError("Invalid product data")
		}
		patch.Price = req.Price
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			return nil, models.NewValidationError("Invalid product data")
		}
		patch.Category = req.Category
	}
	if req.Sizes != nil {
		patch.Sizes = models.NormalizeSizes(req.Sizes)
		if len(patch.Sizes) == 0 {
			return nil, models.NewValidationError("Invalid product data")
		}
	}
	if req.Images != nil {
		patch.Images = cleanImages(req.Images)
		if len(patch.Images) == 0 {
			return nil, models.NewValidationError("Invalid product data")
		}
	}

	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, duplicateProduct(err)
	}
	s.cache.InvalidateProducts(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotFound
	}
	s.cache.InvalidateProducts(ctx)
	return nil
}

// DeleteAll removes every product after a best-effort cleanup of the images
// they reference.
func (s *ProductService) DeleteAll(ctx context.Context) (int64, error) {
	existing, err := s.products.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	urls := []string{}
	for _, p := range existing {
		urls = append(urls, p.Images...)
	}
	if s.images != nil {
		s.images.DeleteReferenced(ctx, urls)
	}

	deleted, err := s.products.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.InvalidateProducts(ctx)
	return deleted, nil
}

func validPrice(price *float64) bool {
	return price != nil && !math.IsNaN(*price) && !math.IsInf(*price, 0)
}

func cleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}

func duplicateProduct(err error) error {
	if !errors.Is(err, models.ErrDuplicate) {
		return err
	}
	if strings.Contains(err.Error(), "slug") {
		return models.NewValidationError("Slug already exists")
	}
	return models.NewValidationError("Product already exists")
}
