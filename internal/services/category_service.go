package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

// CategoryCreate holds the fields accepted when creating a category.
type CategoryCreate struct {
	Name      string
	Type      models.CategoryType
	Group     *string
	ColorCode *string
	IconName  *string
	IsActive  *bool
}

// CategoryUpdate holds the updatable category fields. Nil means "leave
// unchanged".
type CategoryUpdate struct {
	Name      *string
	Type      *models.CategoryType
	Group     *string
	ColorCode *string
	IconName  *string
	IsActive  *bool
}

// CategoryFilter narrows category listings. Filters are conjunctive.
type CategoryFilter struct {
	Type     *models.CategoryType
	Group    *string
	IsActive *bool
}

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// Create inserts a new category.
func (s *categoryService) Create(in CategoryCreate) (*models.Category, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category_name is required")
	}

	category := &models.Category{
		Name:      in.Name,
		Type:      in.Type,
		Group:     in.Group,
		ColorCode: in.ColorCode,
		IconName:  in.IconName,
		IsActive:  true,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, writeError(err, "category constraint violation")
	}
	return category, nil
}

// GetByID retrieves a category by ID.
func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// List retrieves categories matching the filter, ordered alphabetically by
// name. The total is computed over the filtered set before pagination
// applies.
func (s *categoryService) List(filter CategoryFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	base := s.db.Model(&models.Category{})
	if filter.Type != nil {
		base = base.Where("category_type = ?", *filter.Type)
	}
	if filter.Group != nil {
		base = base.Where("category_group = ?", *filter.Group)
	}
	if filter.IsActive != nil {
		base = base.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Order("category_name ASC").Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Limit, page.Offset, total)
	return &result, nil
}

// Update applies the non-nil fields of in to the category. Both PUT and
// PATCH route here; fields not supplied are left untouched.
func (s *categoryService) Update(id uint, in CategoryUpdate) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "category_name cannot be empty")
		}
		updates["category_name"] = *in.Name
	}
	if in.Type != nil {
		updates["category_type"] = *in.Type
	}
	if in.Group != nil {
		updates["category_group"] = *in.Group
	}
	if in.ColorCode != nil {
		updates["color_code"] = *in.ColorCode
	}
	if in.IconName != nil {
		updates["icon_name"] = *in.IconName
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) == 0 {
		return category, nil
	}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, writeError(err, "category constraint violation")
	}
	return s.GetByID(id)
}

// Delete removes a category. Categories referenced by transactions or
// payees cannot be deleted.
func (s *categoryService) Delete(id uint) error {
	category, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return deleteError(err)
	}
	return nil
}
