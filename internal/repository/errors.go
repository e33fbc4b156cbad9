package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrToolNotFound       = errors.New("tool not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrSchemaMissing means the database is reachable but the expected
	// tables or columns are absent, so the caller should point the
	// operator at the migration step instead of showing a generic error.
	ErrSchemaMissing = errors.New("database schema missing")
)

const (
	pqUndefinedTable  = "42P01"
	pqUndefinedColumn = "42703"
)

// gatewayError classifies driver failures by postgres error code rather
// than by message text, so schema problems stay distinguishable from
// transient ones.
func gatewayError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUndefinedTable, pqUndefinedColumn:
			return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
		}
	}
	return err
}
