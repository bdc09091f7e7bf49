package services

import (
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// referenceService exposes the read-only lookup tables. Each call re-reads
// the store; nothing is cached in process.
type referenceService struct {
	db *gorm.DB
}

// NewReferenceService creates a new ReferenceServicer.
func NewReferenceService(db *gorm.DB) ReferenceServicer {
	return &referenceService{db: db}
}

// AccountTypes lists all account types ordered by type name.
func (s *referenceService) AccountTypes() ([]models.AccountType, error) {
	var types []models.AccountType
	if err := s.db.Order("type_name ASC").Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return types, nil
}

// Currencies lists currencies ordered by code, optionally restricted to
// active ones.
func (s *referenceService) Currencies(activeOnly bool) ([]models.Currency, error) {
	query := s.db.Order("currency_code ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var currencies []models.Currency
	if err := query.Find(&currencies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return currencies, nil
}
