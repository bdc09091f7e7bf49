package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"spendtrack/internal/pagination"
	"spendtrack/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	AccountTypeID      uint             `json:"account_type_id" binding:"required"`
	Name               string           `json:"account_name" binding:"required,min=1,max=100"`
	CurrencyCode       string           `json:"currency_code" binding:"omitempty,currency_code"`
	OpeningBalance     decimal.Decimal  `json:"opening_balance"`
	OpeningBalanceDate string           `json:"opening_balance_date" binding:"omitempty,datetime=2006-01-02"`
	AccountNumber      *string          `json:"account_number" binding:"omitempty,max=50"`
	InstitutionName    *string          `json:"institution_name" binding:"omitempty,max=100"`
	CreditLimit        *decimal.Decimal `json:"credit_limit"`
	Notes              *string          `json:"notes"`
	IsClosed           *bool            `json:"is_closed"`
}

// UpdateAccountRequest represents the request payload for updating an
// account. Absent fields are left unchanged. opening_balance is immutable
// and deliberately not accepted.
type UpdateAccountRequest struct {
	AccountTypeID   *uint            `json:"account_type_id"`
	Name            *string          `json:"account_name" binding:"omitempty,max=100"`
	CurrencyCode    *string          `json:"currency_code" binding:"omitempty,currency_code"`
	AccountNumber   *string          `json:"account_number" binding:"omitempty,max=50"`
	InstitutionName *string          `json:"institution_name" binding:"omitempty,max=100"`
	CreditLimit     *decimal.Decimal `json:"credit_limit"`
	Notes           *string          `json:"notes"`
	IsClosed        *bool            `json:"is_closed"`
}

// ListAccountsQuery represents the query parameters for listing accounts.
type ListAccountsQuery struct {
	pagination.PageRequest
	AccountTypeID *uint   `form:"account_type_id"`
	CurrencyCode  *string `form:"currency_code" binding:"omitempty,currency_code"`
	IsClosed      *bool   `form:"is_closed"`
}

// CreateAccount handles the creation of a new account.
// @Summary     Create an account
// @Description Create a new financial account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.Create(services.AccountCreate{
		AccountTypeID:      req.AccountTypeID,
		Name:               req.Name,
		CurrencyCode:       req.CurrencyCode,
		OpeningBalance:     req.OpeningBalance,
		OpeningBalanceDate: parseDate(req.OpeningBalanceDate),
		AccountNumber:      req.AccountNumber,
		InstitutionName:    req.InstitutionName,
		CreditLimit:        req.CreditLimit,
		Notes:              req.Notes,
		IsClosed:           req.IsClosed,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GetAccounts handles listing accounts.
// @Summary     List accounts
// @Description Get a paginated list of accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       account_type_id query int    false "Filter by account type"
// @Param       currency_code   query string false "Filter by currency code"
// @Param       is_closed       query bool   false "Filter by closed status"
// @Param       limit           query int    false "Page size (default 50, max 100)"
// @Param       offset          query int    false "Rows to skip (default 0)"
// @Success     200 {object} pagination.PageResponse[models.Account] "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	var query ListAccountsQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}
	if err := query.Normalize(50, 100); err != nil {
		respondWithError(c, apperrBadRequest(err))
		return
	}

	result, err := h.accountService.List(services.AccountFilter{
		AccountTypeID: query.AccountTypeID,
		CurrencyCode:  query.CurrencyCode,
		IsClosed:      query.IsClosed,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccount handles retrieving a specific account.
// @Summary     Get account by ID
// @Description Get a specific account by ID
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles updating an account. PUT and PATCH both route here
// and both apply partial updates.
// @Summary     Update account
// @Description Update an existing account; absent fields are left unchanged
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Account ID"
// @Param       request body UpdateAccountRequest true "Updated account fields"
// @Success     200 {object} models.Account "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.Update(id, services.AccountUpdate{
		AccountTypeID:   req.AccountTypeID,
		Name:            req.Name,
		CurrencyCode:    req.CurrencyCode,
		AccountNumber:   req.AccountNumber,
		InstitutionName: req.InstitutionName,
		CreditLimit:     req.CreditLimit,
		Notes:           req.Notes,
		IsClosed:        req.IsClosed,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount handles deleting an account.
// @Summary     Delete account
// @Description Delete an account; fails if transactions reference it
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     204 "Account deleted"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Account has transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
