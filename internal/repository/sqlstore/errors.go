package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"multilingual/internal/domain"
)

// mapError converts a driver error into a domain error, keeping the cause
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// checkRowsAffected returns domain.ErrNotFound when a statement touched nothing
func checkRowsAffected(result sql.Result, entity string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, entity, id)
	}
	return nil
}

// rollback is deferred by transactional methods; it is a no-op after commit
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
