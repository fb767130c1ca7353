package repositories

import (
	"context"
	"errors"

	"ansh-apparels/database"
	"ansh-apparels/models"
)

type CartRepository struct {
	db database.DBTX
}

func NewCartRepository(db database.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// GetOrCreate returns the user's cart, inserting an empty one on first access.
func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (user_id, items, version, updated_at)
		VALUES ($1, '[]'::jsonb, 0, NOW())
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{ID: userID, UserID: userID}
	err = r.db.QueryRow(ctx,
		`SELECT items, version, updated_at FROM carts WHERE user_id = $1`, userID,
	).Scan(&cart.Items, &cart.Version, &cart.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// Save writes the whole item list if nobody else wrote since cart.Version was
// read; otherwise it returns models.ErrConflict.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}

	saved := &models.Cart{ID: cart.UserID, UserID: cart.UserID, Items: items}
	err := r.db.QueryRow(ctx, `
		UPDATE carts SET items = $1, version = version + 1, updated_at = NOW()
		WHERE user_id = $2 AND version = $3
		RETURNING version, updated_at
	`, items, cart.UserID, cart.Version).Scan(&saved.Version, &saved.UpdatedAt)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrConflict
		}
		return nil, err
	}
	return saved, nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (user_id, items, version, updated_at)
		VALUES ($1, '[]'::jsonb, 0, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET items = '[]'::jsonb, version = carts.version + 1, updated_at = NOW()
	`, userID)
	return err
}
