package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation reports whether err is a unique constraint failure and, when the driver
// exposes it, the name of the violated constraint.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return pgErr.ConstraintName, true
		}

		return "", false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

// violates reports whether err is a unique violation of constraint. Drivers that do not
// report constraint names match any constraint.
func violates(err error, constraint string) bool {
	name, ok := uniqueViolation(err)
	if !ok {
		return false
	}

	return name == "" || name == constraint
}
