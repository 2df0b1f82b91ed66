package repository

import (
	"context"

	"github.com/lshigami/edulink/database"
	"gorm.io/gorm"
)

// conn returns a context-bound handle, or database.ErrUnavailable when the
// process started without a database.
func conn(ctx context.Context, store *database.Persistence) (*gorm.DB, error) {
	db, err := store.Gorm()
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx), nil
}
