package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
	"spendtrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Only income and expense types can be created through the API.
type CreateTransactionRequest struct {
	AccountID       uint                      `json:"account_id" binding:"required"`
	Type            models.TransactionType    `json:"transaction_type" binding:"required,transaction_type"`
	Amount          decimal.Decimal           `json:"amount" binding:"required"`
	CurrencyCode    string                    `json:"currency_code" binding:"required,currency_code"`
	BaseAmount      decimal.Decimal           `json:"base_amount" binding:"required"`
	TransactionDate string                    `json:"transaction_date" binding:"required,datetime=2006-01-02"`
	Status          *models.TransactionStatus `json:"status" binding:"omitempty,transaction_status"`
	ExchangeRate    *decimal.Decimal          `json:"exchange_rate"`
	PayeeID         *uint                     `json:"payee_id"`
	CategoryID      *uint                     `json:"category_id"`
	Description     *string                   `json:"description" binding:"omitempty,max=255"`
	ReferenceNumber *string                   `json:"reference_number" binding:"omitempty,max=50"`
	Location        *string                   `json:"location" binding:"omitempty,max=255"`
	Notes           *string                   `json:"notes"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	AccountID       *uint                     `json:"account_id"`
	Type            *models.TransactionType   `json:"transaction_type" binding:"omitempty,transaction_type"`
	Amount          *decimal.Decimal          `json:"amount"`
	CurrencyCode    *string                   `json:"currency_code" binding:"omitempty,currency_code"`
	BaseAmount      *decimal.Decimal          `json:"base_amount"`
	TransactionDate *string                   `json:"transaction_date" binding:"omitempty,datetime=2006-01-02"`
	Status          *models.TransactionStatus `json:"status" binding:"omitempty,transaction_status"`
	ExchangeRate    *decimal.Decimal          `json:"exchange_rate"`
	PayeeID         *uint                     `json:"payee_id"`
	CategoryID      *uint                     `json:"category_id"`
	Description     *string                   `json:"description" binding:"omitempty,max=255"`
	ReferenceNumber *string                   `json:"reference_number" binding:"omitempty,max=50"`
	Location        *string                   `json:"location" binding:"omitempty,max=255"`
	Notes           *string                   `json:"notes"`
}

// ListTransactionsQuery represents the query parameters for listing
// transactions.
type ListTransactionsQuery struct {
	pagination.PageRequest
	AccountID  *uint                     `form:"account_id"`
	CategoryID *uint                     `form:"category_id"`
	PayeeID    *uint                     `form:"payee_id"`
	Type       *models.TransactionType   `form:"transaction_type" binding:"omitempty,oneof=income expense transfer"`
	Status     *models.TransactionStatus `form:"status" binding:"omitempty,transaction_status"`
	StartDate  string                    `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string                    `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	SortBy     string                    `form:"sort_by"`
	SortOrder  string                    `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// CreateTransaction handles the creation of a new transaction.
// @Summary     Create a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := models.ParseDate(req.TransactionDate)
	if err != nil {
		respondWithError(c, apperrors.WithDetails(apperrors.ErrValidation,
			map[string]any{"field": "transaction_date", "reason": err.Error()}))
		return
	}

	transaction, err := h.transactionService.Create(services.TransactionCreate{
		AccountID:       req.AccountID,
		Type:            req.Type,
		Amount:          req.Amount,
		CurrencyCode:    req.CurrencyCode,
		BaseAmount:      req.BaseAmount,
		TransactionDate: date,
		Status:          req.Status,
		ExchangeRate:    req.ExchangeRate,
		PayeeID:         req.PayeeID,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Location:        req.Location,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// GetTransactions handles listing transactions.
// @Summary     List transactions
// @Description Get a filtered, sorted, paginated list of transactions
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       account_id  query int    false "Filter by account"
// @Param       category_id query int    false "Filter by category"
// @Param       payee_id    query int    false "Filter by payee"
// @Param       transaction_type query string false "Filter by type (income/expense/transfer)"
// @Param       status      query string false "Filter by status"
// @Param       start_date  query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param       end_date    query string false "Latest transaction date (YYYY-MM-DD)"
// @Param       sort_by     query string false "Sort field (transaction_date/amount/created_at)"
// @Param       sort_order  query string false "Sort direction (asc/desc, default desc)"
// @Param       limit       query int    false "Page size (default 50, max 100)"
// @Param       offset      query int    false "Rows to skip (default 0)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var query ListTransactionsQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}
	if err := query.Normalize(50, 100); err != nil {
		respondWithError(c, apperrBadRequest(err))
		return
	}

	sort := services.TransactionSort{
		Field: query.SortBy,
		Desc:  query.SortOrder != "asc",
	}

	result, err := h.transactionService.List(services.TransactionFilter{
		AccountID:  query.AccountID,
		CategoryID: query.CategoryID,
		PayeeID:    query.PayeeID,
		Type:       query.Type,
		Status:     query.Status,
		StartDate:  parseDate(query.StartDate),
		EndDate:    parseDate(query.EndDate),
	}, sort, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a specific transaction.
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction handles updating a transaction. PUT and PATCH both
// route here and both apply partial updates. Transfer legs are read-only.
// @Summary     Update transaction
// @Description Update an existing transaction; absent fields are left unchanged
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Updated transaction fields"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	var date *models.Date
	if req.TransactionDate != nil {
		d, err := models.ParseDate(*req.TransactionDate)
		if err != nil {
			respondWithError(c, apperrors.WithDetails(apperrors.ErrValidation,
				map[string]any{"field": "transaction_date", "reason": err.Error()}))
			return
		}
		date = &d
	}

	transaction, err := h.transactionService.Update(id, services.TransactionUpdate{
		AccountID:       req.AccountID,
		Type:            req.Type,
		Amount:          req.Amount,
		CurrencyCode:    req.CurrencyCode,
		BaseAmount:      req.BaseAmount,
		TransactionDate: date,
		Status:          req.Status,
		ExchangeRate:    req.ExchangeRate,
		PayeeID:         req.PayeeID,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Location:        req.Location,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles deleting a transaction. The owning account's
// balance is re-adjusted by the store.
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
