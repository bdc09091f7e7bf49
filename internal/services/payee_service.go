package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

const payeeFKReason = "default_category_id does not exist"

// PayeeCreate holds the fields accepted when creating a payee.
type PayeeCreate struct {
	Name              string
	DefaultCategoryID *uint
	Notes             *string
	IsActive          *bool
}

// PayeeUpdate holds the updatable payee fields. Nil means "leave unchanged".
type PayeeUpdate struct {
	Name              *string
	DefaultCategoryID *uint
	Notes             *string
	IsActive          *bool
}

// PayeeFilter narrows payee listings.
type PayeeFilter struct {
	IsActive *bool
}

// payeeService handles payee-related business logic.
type payeeService struct {
	db *gorm.DB
}

// NewPayeeService creates a new PayeeServicer.
func NewPayeeService(db *gorm.DB) PayeeServicer {
	return &payeeService{db: db}
}

// Create inserts a new payee.
func (s *payeeService) Create(in PayeeCreate) (*models.Payee, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "payee_name is required")
	}

	payee := &models.Payee{
		Name:              in.Name,
		DefaultCategoryID: in.DefaultCategoryID,
		Notes:             in.Notes,
		IsActive:          true,
	}
	if in.IsActive != nil {
		payee.IsActive = *in.IsActive
	}

	if err := s.db.Create(payee).Error; err != nil {
		return nil, writeError(err, payeeFKReason)
	}
	return payee, nil
}

// GetByID retrieves a payee by ID.
func (s *payeeService) GetByID(id uint) (*models.Payee, error) {
	var payee models.Payee
	if err := s.db.First(&payee, "payee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPayeeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payee, nil
}

// List retrieves payees matching the filter, ordered alphabetically by
// name. The total is computed over the filtered set before pagination
// applies.
func (s *payeeService) List(filter PayeeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Payee], error) {
	base := s.db.Model(&models.Payee{})
	if filter.IsActive != nil {
		base = base.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var payees []models.Payee
	if err := base.Order("payee_name ASC").Scopes(pagination.Paginate(page)).Find(&payees).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(payees, page.Limit, page.Offset, total)
	return &result, nil
}

// Update applies the non-nil fields of in to the payee. Both PUT and PATCH
// route here; fields not supplied are left untouched.
func (s *payeeService) Update(id uint, in PayeeUpdate) (*models.Payee, error) {
	payee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "payee_name cannot be empty")
		}
		updates["payee_name"] = *in.Name
	}
	if in.DefaultCategoryID != nil {
		updates["default_category_id"] = *in.DefaultCategoryID
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) == 0 {
		return payee, nil
	}
	if err := s.db.Model(payee).Updates(updates).Error; err != nil {
		return nil, writeError(err, payeeFKReason)
	}
	return s.GetByID(id)
}

// Delete removes a payee. Payees referenced by transactions cannot be
// deleted.
func (s *payeeService) Delete(id uint) error {
	payee, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(payee).Error; err != nil {
		return deleteError(err)
	}
	return nil
}
