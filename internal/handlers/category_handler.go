package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
	"spendtrack/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name      string              `json:"category_name" binding:"required,min=1,max=50"`
	Type      models.CategoryType `json:"category_type" binding:"required,category_type"`
	Group     *string             `json:"category_group" binding:"omitempty,max=50"`
	ColorCode *string             `json:"color_code" binding:"omitempty,hex_color"`
	IconName  *string             `json:"icon_name" binding:"omitempty,max=50"`
	IsActive  *bool               `json:"is_active"`
}

// UpdateCategoryRequest represents the request payload for updating a
// category. Absent fields are left unchanged.
type UpdateCategoryRequest struct {
	Name      *string              `json:"category_name" binding:"omitempty,max=50"`
	Type      *models.CategoryType `json:"category_type" binding:"omitempty,category_type"`
	Group     *string              `json:"category_group" binding:"omitempty,max=50"`
	ColorCode *string              `json:"color_code" binding:"omitempty,hex_color"`
	IconName  *string              `json:"icon_name" binding:"omitempty,max=50"`
	IsActive  *bool                `json:"is_active"`
}

// ListCategoriesQuery represents the query parameters for listing categories.
type ListCategoriesQuery struct {
	pagination.PageRequest
	Type     *models.CategoryType `form:"category_type" binding:"omitempty,category_type"`
	Group    *string              `form:"category_group"`
	IsActive *bool                `form:"is_active"`
}

// CreateCategory handles the creation of a new category.
// @Summary     Create a category
// @Description Create a new transaction category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.Create(services.CategoryCreate{
		Name:      req.Name,
		Type:      req.Type,
		Group:     req.Group,
		ColorCode: req.ColorCode,
		IconName:  req.IconName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories handles listing categories, ordered by name.
// @Summary     List categories
// @Description Get a paginated list of categories ordered alphabetically
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       category_type  query string false "Filter by type (income/expense/transfer)"
// @Param       category_group query string false "Filter by group"
// @Param       is_active      query bool   false "Filter by active status"
// @Param       limit          query int    false "Page size (default 100, max 200)"
// @Param       offset         query int    false "Rows to skip (default 0)"
// @Success     200 {object} pagination.PageResponse[models.Category] "Paginated categories"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var query ListCategoriesQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}
	if err := query.Normalize(100, 200); err != nil {
		respondWithError(c, apperrBadRequest(err))
		return
	}

	result, err := h.categoryService.List(services.CategoryFilter{
		Type:     query.Type,
		Group:    query.Group,
		IsActive: query.IsActive,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategory handles retrieving a specific category.
// @Summary     Get category by ID
// @Description Get a specific category by ID
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles updating a category. PUT and PATCH both route
// here and both apply partial updates.
// @Summary     Update category
// @Description Update an existing category; absent fields are left unchanged
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "Category ID"
// @Param       request body UpdateCategoryRequest true "Updated category fields"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.Update(id, services.CategoryUpdate{
		Name:      req.Name,
		Type:      req.Type,
		Group:     req.Group,
		ColorCode: req.ColorCode,
		IconName:  req.IconName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles deleting a category.
// @Summary     Delete category
// @Description Delete a category; fails if transactions or payees reference it
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     204 "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category is referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
