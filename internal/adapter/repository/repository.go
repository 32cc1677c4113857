package repository

import (
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"

	"career-hub/internal/domain"
)

const uniqueViolation = "23505"

// translate maps driver errors onto the domain sentinels.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(domain.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Wrap(domain.ErrConflict, what)
	}
	return errors.Wrap(err, what)
}

// affected reports a missing row when a keyed update or delete touched nothing.
func affected(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return errors.Wrap(domain.ErrNotFound, what)
	}
	return nil
}
