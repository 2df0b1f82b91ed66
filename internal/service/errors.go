package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/apperr"
	"gorm.io/gorm"
)

// storeError classifies a repository error at the service boundary.
func storeError(err error, op, notFoundMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFoundMessage, err)
	case errors.Is(err, database.ErrUnavailable):
		return apperr.PersistenceUnavailable(err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
