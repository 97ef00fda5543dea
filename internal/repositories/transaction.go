package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Transaction runs fn inside a database transaction. Repositories built from
// the tx handle share it; any error returned by fn rolls the whole unit back.
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
