package services

import (
	"context"
	"errors"
	"strings"

	"ansh-apparels/models"

	"github.com/rs/zerolog/log"
)

const cartWriteAttempts = 3

type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	return s.carts.GetOrCreate(ctx, userID)
}

func (s *CartService) AddItem(ctx context.Context, userID string, req models.AddCartItemRequest) (*models.Cart, error) {
	item := models.CartItem{
		ProductID: req.ProductID,
		Slug:      strings.TrimSpace(req.Slug),
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Size:      strings.TrimSpace(req.Size),
		Quantity:  req.Quantity,
	}
	if item.Slug == "" || item.Size == "" {
		return nil, models.NewValidationError("Missing slug or size")
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	return s.mutate(ctx, userID, func(items []models.CartItem) []models.CartItem {
		return addOrSum(items, item)
	})
}

// UpdateQuantity overwrites the quantity of a line; zero or less removes it.
// A line that is not in the cart is left alone.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, req models.UpdateCartItemRequest) (*models.Cart, error) {
	slug := strings.TrimSpace(req.Slug)
	size := strings.TrimSpace(req.Size)
	if slug == "" || size == "" || req.Quantity == nil {
		return nil, models.NewValidationError("Missing slug, size, or quantity")
	}
	quantity := *req.Quantity

	return s.mutate(ctx, userID, func(items []models.CartItem) []models.CartItem {
		if quantity <= 0 {
			return removeLine(items, slug, size)
		}
		for i := range items {
			if items[i].Slug == slug && items[i].Size == size {
				items[i].Quantity = quantity
			}
		}
		return items
	})
}

func (s *CartService) RemoveItem(ctx context.Context, userID string, req models.RemoveCartItemRequest) (*models.Cart, error) {
	slug := strings.TrimSpace(req.Slug)
	size := strings.TrimSpace(req.Size)
	if slug == "" || size == "" {
		return nil, models.NewValidationError("Missing slug or size")
	}

	return s.mutate(ctx, userID, func(items []models.CartItem) []models.CartItem {
		return removeLine(items, slug, size)
	})
}

// Merge folds a guest cart into the user's cart with the same sum-or-append
// rule as AddItem. Lines without slug or size are skipped.
func (s *CartService) Merge(ctx context.Context, userID string, incoming []models.CartItem) (*models.Cart, error) {
	return s.mutate(ctx, userID, func(items []models.CartItem) []models.CartItem {
		for _, item := range incoming {
			item.Slug = strings.TrimSpace(item.Slug)
			item.Size = strings.TrimSpace(item.Size)
			if item.Slug == "" || item.Size == "" {
				continue
			}
			if item.Quantity < 1 {
				item.Quantity = 1
			}
			items = addOrSum(items, item)
		}
		return items
	})
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}

// mutate runs a read-modify-write cycle against the cart document and retries
// from a fresh read when another writer got there first.
func (s *CartService) mutate(ctx context.Context, userID string, apply func([]models.CartItem) []models.CartItem) (*models.Cart, error) {
	for attempt := 1; attempt <= cartWriteAttempts; attempt++ {
		cart, err := s.carts.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		items := make([]models.CartItem, len(cart.Items))
		copy(items, cart.Items)
		cart.Items = apply(items)

		saved, err := s.carts.Save(ctx, cart)
		if errors.Is(err, models.ErrConflict) {
			log.Debug().Str("user_id", userID).Int("attempt", attempt).Msg("cart write conflict, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}
		return saved, nil
	}
	return nil, models.ErrConflict
}

func addOrSum(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].Slug == item.Slug && items[i].Size == item.Size {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

func removeLine(items []models.CartItem, slug, size string) []models.CartItem {
	kept := items[:0]
	for _, it := range items {
		if it.Slug == slug && it.Size == size {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
