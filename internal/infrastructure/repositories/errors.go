package repositories

import (
	"errors"
	"strings"

	domainerrors "community-hub.backend/internal/domain/errors"
	"gorm.io/gorm"
)

// translateError maps driver and gorm errors onto domain sentinels. Unique
// violations are detected by message too, in case the dialector was opened
// without TranslateError.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return domainerrors.ErrAlreadyExists
	}
	return err
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
