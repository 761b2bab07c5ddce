package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports a postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}
