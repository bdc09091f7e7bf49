package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/pagination"
	"spendtrack/internal/services"
)

// PayeeHandler handles payee-related requests.
type PayeeHandler struct {
	payeeService services.PayeeServicer
}

// NewPayeeHandler creates a new PayeeHandler.
func NewPayeeHandler(payeeService services.PayeeServicer) *PayeeHandler {
	return &PayeeHandler{payeeService: payeeService}
}

// CreatePayeeRequest represents the request payload for creating a payee.
type CreatePayeeRequest struct {
	Name              string  `json:"payee_name" binding:"required,min=1,max=100"`
	DefaultCategoryID *uint   `json:"default_category_id"`
	Notes             *string `json:"notes"`
	IsActive          *bool   `json:"is_active"`
}

// UpdatePayeeRequest represents the request payload for updating a payee.
// Absent fields are left unchanged.
type UpdatePayeeRequest struct {
	Name              *string `json:"payee_name" binding:"omitempty,max=100"`
	DefaultCategoryID *uint   `json:"default_category_id"`
	Notes             *string `json:"notes"`
	IsActive          *bool   `json:"is_active"`
}

// ListPayeesQuery represents the query parameters for listing payees.
type ListPayeesQuery struct {
	pagination.PageRequest
	IsActive *bool `form:"is_active"`
}

// CreatePayee handles the creation of a new payee.
// @Summary     Create a payee
// @Description Create a new payee
// @Tags        payees
// @Accept      json
// @Produce     json
// @Param       request body CreatePayeeRequest true "Payee details"
// @Success     201 {object} models.Payee "Payee created"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees [post]
func (h *PayeeHandler) CreatePayee(c *gin.Context) {
	var req CreatePayeeRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	payee, err := h.payeeService.Create(services.PayeeCreate{
		Name:              req.Name,
		DefaultCategoryID: req.DefaultCategoryID,
		Notes:             req.Notes,
		IsActive:          req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payee)
}

// GetPayees handles listing payees, ordered by name.
// @Summary     List payees
// @Description Get a paginated list of payees ordered alphabetically
// @Tags        payees
// @Accept      json
// @Produce     json
// @Param       is_active query bool false "Filter by active status"
// @Param       limit     query int  false "Page size (default 100, max 200)"
// @Param       offset    query int  false "Rows to skip (default 0)"
// @Success     200 {object} pagination.PageResponse[models.Payee] "Paginated payees"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees [get]
func (h *PayeeHandler) GetPayees(c *gin.Context) {
	var query ListPayeesQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}
	if err := query.Normalize(100, 200); err != nil {
		respondWithError(c, apperrBadRequest(err))
		return
	}

	result, err := h.payeeService.List(services.PayeeFilter{
		IsActive: query.IsActive,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPayee handles retrieving a specific payee.
// @Summary     Get payee by ID
// @Description Get a specific payee by ID
// @Tags        payees
// @Accept      json
// @Produce     json
// @Param       id path int true "Payee ID"
// @Success     200 {object} models.Payee "Payee details"
// @Failure     400 {object} ErrorResponse "Invalid payee ID"
// @Failure     404 {object} ErrorResponse "Payee not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees/{id} [get]
func (h *PayeeHandler) GetPayee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payee, err := h.payeeService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payee)
}

// UpdatePayee handles updating a payee. PUT and PATCH both route here and
// both apply partial updates.
// @Summary     Update payee
// @Description Update an existing payee; absent fields are left unchanged
// @Tags        payees
// @Accept      json
// @Produce     json
// @Param       id      path int                true "Payee ID"
// @Param       request body UpdatePayeeRequest true "Updated payee fields"
// @Success     200 {object} models.Payee "Updated payee"
// @Failure     400 {object} ErrorResponse "Invalid payee ID"
// @Failure     404 {object} ErrorResponse "Payee not found"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees/{id} [put]
func (h *PayeeHandler) UpdatePayee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePayeeRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	payee, err := h.payeeService.Update(id, services.PayeeUpdate{
		Name:              req.Name,
		DefaultCategoryID: req.DefaultCategoryID,
		Notes:             req.Notes,
		IsActive:          req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payee)
}

// DeletePayee handles deleting a payee.
// @Summary     Delete payee
// @Description Delete a payee; fails if transactions reference it
// @Tags        payees
// @Accept      json
// @Produce     json
// @Param       id path int true "Payee ID"
// @Success     204 "Payee deleted"
// @Failure     400 {object} ErrorResponse "Invalid payee ID"
// @Failure     404 {object} ErrorResponse "Payee not found"
// @Failure     409 {object} ErrorResponse "Payee is referenced"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payees/{id} [delete]
func (h *PayeeHandler) DeletePayee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.payeeService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
