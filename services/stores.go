package services

import (
	"context"
	"io"

	"ansh-apparels/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id, role string) (*models.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, sessionID, userID string) error
	GetUserID(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// CartStore.Save must fail with models.ErrConflict when the stored version no
// longer matches cart.Version.
type CartStore interface {
	GetOrCreate(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type ContactStore interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, msg *models.ContactMessage) error
	Delete(ctx context.Context, id string) (bool, error)
}

type BlobBucket interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (*models.StoredFile, error)
	Open(ctx context.Context, id string) (*models.StoredFile, io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}

type ImageHost interface {
	UploadImage(ctx context.Context, r io.Reader, filename string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type ProductCache interface {
	GetProducts(ctx context.Context) ([]models.Product, bool)
	SetProducts(ctx context.Context, products []models.Product)
	InvalidateProducts(ctx context.Context)
}

type ContactNotifier interface {
	NotifyContact(msg models.ContactMessage) error
}
