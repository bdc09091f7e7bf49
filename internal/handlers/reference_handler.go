package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/services"
)

// ReferenceHandler serves the read-only lookup tables.
type ReferenceHandler struct {
	referenceService services.ReferenceServicer
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(referenceService services.ReferenceServicer) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// GetAccountTypes handles listing all account types.
// @Summary     List account types
// @Description Get all account types ordered by name
// @Tags        reference
// @Accept      json
// @Produce     json
// @Success     200 {array} models.AccountType "Account types"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reference/account-types [get]
func (h *ReferenceHandler) GetAccountTypes(c *gin.Context) {
	accountTypes, err := h.referenceService.AccountTypes()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, accountTypes)
}

// GetCurrencies handles listing currencies. Inactive currencies are
// excluded unless active_only=false.
// @Summary     List currencies
// @Description Get supported currencies ordered by code
// @Tags        reference
// @Accept      json
// @Produce     json
// @Param       active_only query bool false "Only active currencies (default true)"
// @Success     200 {array} models.Currency "Currencies"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reference/currencies [get]
func (h *ReferenceHandler) GetCurrencies(c *gin.Context) {
	var query struct {
		ActiveOnly *bool `form:"active_only"`
	}
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}

	activeOnly := true
	if query.ActiveOnly != nil {
		activeOnly = *query.ActiveOnly
	}

	currencies, err := h.referenceService.Currencies(activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, currencies)
}
