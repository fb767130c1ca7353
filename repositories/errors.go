package repositories

import (
	"errors"
	"fmt"

	"ansh-apparels/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", models.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

// validID reports whether id can be compared against a UUID column. Anything
// else can never match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
