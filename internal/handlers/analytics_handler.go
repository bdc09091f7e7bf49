package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/models"
	"spendtrack/internal/services"
)

// AnalyticsHandler handles aggregation requests over transactions.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// analyticsQuery holds the filter parameters shared by all analytics
// endpoints. Transfers are excluded regardless of the type filter.
type analyticsQuery struct {
	StartDate  string                  `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string                  `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Type       *models.TransactionType `form:"transaction_type" binding:"omitempty,oneof=income expense"`
	CategoryID *uint                   `form:"category_id"`
	AccountID  *uint                   `form:"account_id"`
	PayeeID    *uint                   `form:"payee_id"`
}

func (q analyticsQuery) filter() services.AnalyticsFilter {
	return services.AnalyticsFilter{
		StartDate:  parseDate(q.StartDate),
		EndDate:    parseDate(q.EndDate),
		Type:       q.Type,
		CategoryID: q.CategoryID,
		AccountID:  q.AccountID,
		PayeeID:    q.PayeeID,
	}
}

// BreakdownQuery represents the query parameters for a breakdown.
type BreakdownQuery struct {
	analyticsQuery
	Dimension string `form:"dimension" binding:"required,oneof=category payee account"`
	Metric    string `form:"metric" binding:"omitempty,oneof=sum count"`
}

// TrendQuery represents the query parameters for a trend.
type TrendQuery struct {
	analyticsQuery
	TimeGrain string `form:"time_grain" binding:"required,oneof=day week month"`
}

// GetSummary handles the summary aggregation.
// @Summary     Transaction summary
// @Description Get the total base amount and count of matching transactions
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       start_date       query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param       end_date         query string false "Latest transaction date (YYYY-MM-DD)"
// @Param       transaction_type query string false "Filter by type (income/expense)"
// @Param       category_id      query int    false "Filter by category"
// @Param       account_id       query int    false "Filter by account"
// @Param       payee_id         query int    false "Filter by payee"
// @Success     200 {object} services.SummaryResult "Summary totals"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	var query analyticsQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.analyticsService.Summary(query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBreakdown handles the grouped aggregation.
// @Summary     Transaction breakdown
// @Description Group matching transactions by category, payee, or account
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       dimension        query string true  "Grouping dimension (category/payee/account)"
// @Param       metric           query string false "Aggregate metric (sum/count, default sum)"
// @Param       start_date       query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param       end_date         query string false "Latest transaction date (YYYY-MM-DD)"
// @Param       transaction_type query string false "Filter by type (income/expense)"
// @Param       account_id       query int    false "Filter by account"
// @Success     200 {object} services.BreakdownResult "Labels and values, sorted by value"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/breakdown [get]
func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	var query BreakdownQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.analyticsService.Breakdown(query.Dimension, query.Metric, query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrend handles the time-series aggregation.
// @Summary     Transaction trend
// @Description Sum matching transactions per day, week, or month
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       time_grain       query string true  "Time grain (day/week/month)"
// @Param       start_date       query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param       end_date         query string false "Latest transaction date (YYYY-MM-DD)"
// @Param       transaction_type query string false "Filter by type (income/expense)"
// @Param       category_id      query int    false "Filter by category"
// @Param       account_id       query int    false "Filter by account"
// @Success     200 {object} services.TrendResult "Period start dates and sums, chronological"
// @Failure     400 {object} ErrorResponse "Malformed query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	var query TrendQuery
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.analyticsService.Trend(query.TimeGrain, query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
