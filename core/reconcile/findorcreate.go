package reconcile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindOrCreate resolves the row identified by conds, inserting candidate when
// it does not exist. On return candidate holds the persisted row.
//
// The insert is conflict-tolerant: when a concurrent writer inserts the same
// natural key first, the existing row is read back under a shared lock and
// created is false. conds must cover a unique index of T.
func FindOrCreate[T any](ctx context.Context, tx *gorm.DB, conds map[string]any, candidate *T) (created bool, err error) {
	tx = tx.WithContext(ctx)

	var found T
	err = tx.Where(conds).Take(&found).Error
	switch {
	case err == nil:
		*candidate = found
		return false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, Classify("lookup", err)
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(candidate)
	if res.Error != nil {
		return false, Classify("insert", res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// Lost the race; the winner's row is visible now.
	var winner T
	err = tx.Clauses(clause.Locking{Strength: "SHARE"}).Where(conds).Take(&winner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("row vanished after conflicting insert: %w", err)
		}
		return false, Classify("refetch", err)
	}
	*candidate = winner
	return false, nil
}

// InTx runs fn inside a transaction. Connectivity failures, including those
// raised while opening or committing, come back as StorageUnavailableError.
func InTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	return Classify("transaction", err)
}
