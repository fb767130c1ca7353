package repositories

import (
	"context"

	"ansh-apparels/database"
	"ansh-apparels/models"
)

type ContactRepository struct {
	db database.DBTX
}

func NewContactRepository(db database.DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id::text, name, phone, email, message, created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, m)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contacts (id, name, phone, email, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.Name, msg.Phone, msg.Email, msg.Message, msg.CreatedAt)
	return translateError(err)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
