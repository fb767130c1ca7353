package repositories

import (
	"context"

	"ansh-apparels/database"
	"ansh-apparels/models"
)

type SessionRepository struct {
	db database.DBTX
}

func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, sessionID, userID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, user_id, created_at) VALUES ($1, $2, NOW())`,
		sessionID, userID)
	return translateError(err)
}

func (r *SessionRepository) GetUserID(ctx context.Context, sessionID string) (string, error) {
	if !validID(sessionID) {
		return "", models.ErrNotFound
	}
	var userID string
	err := r.db.QueryRow(ctx, `SELECT user_id::text FROM sessions WHERE id = $1`, sessionID).Scan(&userID)
	return userID, translateError(err)
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if !validID(sessionID) {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}
