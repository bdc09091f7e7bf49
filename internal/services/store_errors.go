package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
)

// writeError categorizes a store error raised by a create or update.
// Foreign key violations surface as validation errors with a hint about
// which references may be missing; other constraint violations map to a
// bad request; everything else is internal.
func writeError(err error, reason string) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.WithDetails(apperrors.ErrForeignKey, map[string]any{"reason": reason})
	case errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.WithMessage(apperrors.ErrBadRequest, "Constraint violation"), err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// deleteError categorizes a store error raised by a delete. A foreign key
// violation here means dependent rows still reference the entity.
func deleteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.Wrap(apperrors.ErrDeleteConflict, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
