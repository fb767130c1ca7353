package repositories

import (
	"context"
	"strings"

	"ansh-apparels/database"
	"ansh-apparels/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DBTX
}

func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id::text, name, email, password_hash, role, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = models.NormalizeRole(user.Role)
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		strings.ToLower(user.Email),
		user.PasswordHash,
		models.NormalizeRole(user.Role),
		user.CreatedAt,
	)
	return translateError(err)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
	user, err := scanUser(row)
	return user, translateError(err)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, models.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	return user, translateError(err)
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) SetRole(ctx context.Context, id, role string) (*models.User, error) {
	if !validID(id) {
		return nil, models.ErrNotFound
	}
	row := r.db.QueryRow(ctx,
		`UPDATE users SET role = $1 WHERE id = $2 RETURNING `+userColumns,
		models.NormalizeRole(role), id)
	user, err := scanUser(row)
	return user, translateError(err)
}
