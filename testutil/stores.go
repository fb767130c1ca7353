// Package testutil provides in-memory stand-ins for the PostgreSQL, Redis,
// Cloudinary and SMTP backends so services and routes can be tested without
// any of them running.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"ansh-apparels/models"

	"github.com/google/uuid"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[string]models.User{}}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, u := range s.users {
		if u.Email == email {
			return fmt.Errorf("%w: users_email_key", models.ErrDuplicate)
		}
	}
	stored := *user
	stored.Email = email
	stored.Role = models.NormalizeRole(stored.Role)
	s.users[stored.ID] = stored
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *UserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (s *UserStore) SetRole(_ context.Context, id, role string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	u.Role = models.NormalizeRole(role)
	s.users[id] = u
	return &u, nil
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]string{}}
}

func (s *SessionStore) Create(_ context.Context, sessionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = userID
	return nil
}

func (s *SessionStore) GetUserID(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.sessions[sessionID]
	if !ok {
		return "", models.ErrNotFound
	}
	return userID, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type ProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

func NewProductStore(seed ...models.Product) *ProductStore {
	return &ProductStore{products: append([]models.Product{}, seed...)}
}

func (s *ProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]models.Product{}, s.products...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ProductStore) FindBySlug(_ context.Context, slug string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *ProductStore) FindByID(_ context.Context, id int64) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *ProductStore) Create(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, p := range s.products {
		if p.Slug == product.Slug {
			return fmt.Errorf("%w: products_slug_key", models.ErrDuplicate)
		}
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	s.products = append(s.products, *product)
	return nil
}

func (s *ProductStore) Update(_ context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		p := &s.products[i]
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Sizes != nil {
			p.Sizes = patch.Sizes
		}
		if patch.Images != nil {
			p.Images = patch.Images
		}
		out := *p
		return &out, nil
	}
	return nil, models.ErrNotFound
}

func (s *ProductStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *ProductStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.products))
	s.products = nil
	return n, nil
}

// CartStore keeps carts with the same optimistic versioning as the carts
// table. Conflicts makes the next N saves fail as if another writer won.
type CartStore struct {
	mu        sync.Mutex
	carts     map[string]models.Cart
	Conflicts int
	Saves     int
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]models.Cart{}}
}

func (s *CartStore) GetOrCreate(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = models.Cart{ID: userID, UserID: userID, Items: []models.CartItem{}, UpdatedAt: time.Now()}
		s.carts[userID] = cart
	}
	cart.Items = append([]models.CartItem{}, cart.Items...)
	return &cart, nil
}

func (s *CartStore) Save(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Saves++
	if s.Conflicts > 0 {
		s.Conflicts--
		return nil, models.ErrConflict
	}

	current, ok := s.carts[cart.UserID]
	if !ok || current.Version != cart.Version {
		return nil, models.ErrConflict
	}
	saved := models.Cart{
		ID:        cart.UserID,
		UserID:    cart.UserID,
		Items:     append([]models.CartItem{}, cart.Items...),
		Version:   cart.Version + 1,
		UpdatedAt: time.Now(),
	}
	s.carts[cart.UserID] = saved
	return &saved, nil
}

func (s *CartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	s.carts[userID] = models.Cart{ID: userID, UserID: userID, Items: []models.CartItem{}, Version: cart.Version + 1, UpdatedAt: time.Now()}
	return nil
}

type ContactStore struct {
	mu       sync.Mutex
	contacts []models.ContactMessage
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

func (s *ContactStore) List(_ context.Context) ([]models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]models.ContactMessage{}, s.contacts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ContactStore) Create(_ context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, *msg)
	return nil
}

func (s *ContactStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.contacts {
		if c.ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type storedBlob struct {
	file models.StoredFile
	data []byte
}

type Bucket struct {
	mu      sync.Mutex
	blobs   map[string]storedBlob
	Deleted []string
}

func NewBucket() *Bucket {
	return &Bucket{blobs: map[string]storedBlob{}}
}

func (b *Bucket) Upload(_ context.Context, filename, contentType string, r io.Reader) (*models.StoredFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	file := models.StoredFile{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Length:      int64(len(data)),
		ChunkSize:   255 * 1024,
		UploadedAt:  time.Now(),
	}
	b.blobs[file.ID] = storedBlob{file: file, data: data}
	return &file, nil
}

// Put stores data under a fixed id.
func (b *Bucket) Put(id, filename, contentType string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[id] = storedBlob{
		file: models.StoredFile{ID: id, Filename: filename, ContentType: contentType, Length: int64(len(data))},
		data: data,
	}
}

func (b *Bucket) Open(_ context.Context, id string) (*models.StoredFile, io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	blob, ok := b.blobs[id]
	if !ok {
		return nil, nil, models.ErrNotFound
	}
	file := blob.file
	return &file, io.NopCloser(bytes.NewReader(blob.data)), nil
}

func (b *Bucket) Delete(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.blobs[id]; !ok {
		return models.ErrNotFound
	}
	delete(b.blobs, id)
	b.Deleted = append(b.Deleted, id)
	return nil
}

func (b *Bucket) Has(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.blobs[id]
	return ok
}

type ProductCache struct {
	mu            sync.Mutex
	products      []models.Product
	cached        bool
	Hits          int
	Invalidations int
}

func (c *ProductCache) GetProducts(_ context.Context) ([]models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cached {
		return nil, false
	}
	c.Hits++
	return append([]models.Product{}, c.products...), true
}

func (c *ProductCache) SetProducts(_ context.Context, products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]models.Product{}, products...)
	c.cached = true
}

func (c *ProductCache) InvalidateProducts(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.cached = false
	c.Invalidations++
}

type Notifier struct {
	mu   sync.Mutex
	Sent []models.ContactMessage
	Err  error
}

func (n *Notifier) NotifyContact(msg models.ContactMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Sent = append(n.Sent, msg)
	return nil
}

// ImageHost pretends to be Cloudinary: uploads get a res.cloudinary.com URL
// and deletes of unknown public ids report models.ErrNotFound.
type ImageHost struct {
	mu       sync.Mutex
	images   map[string]bool
	Uploaded []string
	Deleted  []string
}

func NewImageHost(existing ...string) *ImageHost {
	h := &ImageHost{images: map[string]bool{}}
	for _, id := range existing {
		h.images[id] = true
	}
	return h
}

func (h *ImageHost) UploadImage(_ context.Context, r io.Reader, filename string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	publicID := "ansh-apparels/products/" + strings.TrimSuffix(filename, ".png")
	h.images[publicID] = true
	h.Uploaded = append(h.Uploaded, filename)
	return "https://res.cloudinary.com/demo/image/upload/v1700000000/" + publicID + ".png", nil
}

func (h *ImageHost) DeleteImage(_ context.Context, publicID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.images[publicID] {
		return models.ErrNotFound
	}
	delete(h.images, publicID)
	h.Deleted = append(h.Deleted, publicID)
	return nil
}
