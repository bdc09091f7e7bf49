package services

import (
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// AnalyticsFilter narrows the transaction population an aggregation runs
// over. Transfer transactions are always excluded regardless of the filter.
type AnalyticsFilter struct {
	StartDate  *models.Date
	EndDate    *models.Date
	Type       *models.TransactionType
	CategoryID *uint
	AccountID  *uint
	PayeeID    *uint
}

// SummaryResult is the output of Summary: the sum of base_amount and the
// row count over the matching transactions.
type SummaryResult struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// BreakdownResult pairs dimension display names with their aggregated
// values, sorted by value descending.
type BreakdownResult struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// TrendResult pairs ISO-8601 period start dates with per-period sums,
// ordered chronologically. Periods with no transactions are omitted.
type TrendResult struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// breakdownDims maps a breakdown dimension to its join and display column.
var breakdownDims = map[string]struct {
	join  string
	label string
}{
	"category": {
		join:  "JOIN categories ON categories.category_id = transactions.category_id",
		label: "categories.category_name",
	},
	"payee": {
		join:  "JOIN payees ON payees.payee_id = transactions.payee_id",
		label: "payees.payee_name",
	},
	"account": {
		join:  "JOIN accounts ON accounts.account_id = transactions.account_id",
		label: "accounts.account_name",
	},
}

// analyticsService builds grouped and filtered aggregations over the
// transactions table.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// Summary returns the total base_amount and row count over the filtered,
// transfer-free transaction population. Total is zero when nothing matches.
func (s *analyticsService) Summary(filter AnalyticsFilter) (*SummaryResult, error) {
	var row SummaryResult
	query := s.base(filter)
	if filter.PayeeID != nil {
		query = query.Where("transactions.payee_id = ?", *filter.PayeeID)
	}
	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	err := query.
		Select("COALESCE(SUM(transactions.base_amount), 0) AS total, COUNT(transactions.transaction_id) AS count").
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// Breakdown groups the filtered transactions by the dimension's display
// name and aggregates the chosen metric per group, sorted by value
// descending. Filtering by the dimension's own identity is a no-op.
func (s *analyticsService) Breakdown(dimension, metric string, filter AnalyticsFilter) (*BreakdownResult, error) {
	dim, ok := breakdownDims[dimension]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrBadRequest, "invalid dimension: "+dimension)
	}

	metricExpr := "SUM(transactions.base_amount)"
	switch metric {
	case "", "sum":
	case "count":
		metricExpr = "COUNT(transactions.transaction_id)"
	default:
		return nil, apperrors.WithMessage(apperrors.ErrBadRequest, "invalid metric: "+metric)
	}

	query := s.base(filter).Joins(dim.join)
	if filter.AccountID != nil && dimension != "account" {
		query = query.Where("transactions.account_id = ?", *filter.AccountID)
	}

	var rows []struct {
		Label string
		Value *float64
	}
	err := query.
		Select(dim.label + " AS label, " + metricExpr + " AS value").
		Group(dim.label).
		Order("COALESCE(" + metricExpr + ", 0) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &BreakdownResult{Labels: []string{}, Values: []float64{}}
	for _, row := range rows {
		result.Labels = append(result.Labels, row.Label)
		if row.Value != nil {
			result.Values = append(result.Values, *row.Value)
		} else {
			result.Values = append(result.Values, 0.0)
		}
	}
	return result, nil
}

// Trend sums base_amount per period, truncating transaction_date to the
// grain boundary (weeks start on Monday). Output is sparse: periods with no
// transactions are omitted.
func (s *analyticsService) Trend(timeGrain string, filter AnalyticsFilter) (*TrendResult, error) {
	periodExpr, err := s.periodExpr(timeGrain)
	if err != nil {
		return nil, err
	}

	query := s.base(filter)
	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		query = query.Where("transactions.account_id = ?", *filter.AccountID)
	}

	var rows []struct {
		Period string
		Value  *float64
	}
	err = query.
		Select(periodExpr + " AS period, SUM(transactions.base_amount) AS value").
		Group(periodExpr).
		Order(periodExpr + " ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &TrendResult{Dates: []string{}, Values: []float64{}}
	for _, row := range rows {
		if row.Period == "" {
			continue
		}
		result.Dates = append(result.Dates, row.Period)
		if row.Value != nil {
			result.Values = append(result.Values, *row.Value)
		} else {
			result.Values = append(result.Values, 0.0)
		}
	}
	return result, nil
}

// base builds the shared filtered query. Transfers never participate in
// analytics.
func (s *analyticsService) base(filter AnalyticsFilter) *gorm.DB {
	query := s.db.Model(&models.Transaction{}).
		Where("transactions.transaction_type <> ?", models.TransactionTypeTransfer)
	if filter.StartDate != nil {
		query = query.Where("transactions.transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.transaction_date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("transactions.transaction_type = ?", *filter.Type)
	}
	return query
}

// periodExpr returns a dialect-specific SQL expression that truncates
// transaction_date to the grain boundary and renders it as YYYY-MM-DD.
func (s *analyticsService) periodExpr(timeGrain string) (string, error) {
	sqlite := s.db.Dialector.Name() == "sqlite"
	switch timeGrain {
	case "day":
		if sqlite {
			return "date(transactions.transaction_date)", nil
		}
		return "to_char(transactions.transaction_date, 'YYYY-MM-DD')", nil
	case "week":
		if sqlite {
			// Monday of the ISO week: advance to the next Sunday
			// (inclusive), then step back six days.
			return "date(transactions.transaction_date, 'weekday 0', '-6 days')", nil
		}
		return "to_char(date_trunc('week', transactions.transaction_date), 'YYYY-MM-DD')", nil
	case "month":
		if sqlite {
			return "date(transactions.transaction_date, 'start of month')", nil
		}
		return "to_char(date_trunc('month', transactions.transaction_date), 'YYYY-MM-DD')", nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrBadRequest, "invalid time grain: "+timeGrain)
	}
}
