package sqldb

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

// ErrDuplicateKey marks a write rejected by a natural-key UNIQUE constraint.
// It is returned wrapped together with the driver error.
var ErrDuplicateKey = errors.New("duplicate natural key")

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
