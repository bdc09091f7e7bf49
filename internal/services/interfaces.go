package services

import (
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	Create(in AccountCreate) (*models.Account, error)
	GetByID(id uint) (*models.Account, error)
	List(filter AccountFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	Update(id uint, in AccountUpdate) (*models.Account, error)
	Delete(id uint) error
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	Create(in TransactionCreate) (*models.Transaction, error)
	GetByID(id uint) (*models.Transaction, error)
	List(filter TransactionFilter, sort TransactionSort, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Update(id uint, in TransactionUpdate) (*models.Transaction, error)
	Delete(id uint) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	Create(in CategoryCreate) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	List(filter CategoryFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	Update(id uint, in CategoryUpdate) (*models.Category, error)
	Delete(id uint) error
}

// PayeeServicer defines the contract for payee-related business logic.
type PayeeServicer interface {
	Create(in PayeeCreate) (*models.Payee, error)
	GetByID(id uint) (*models.Payee, error)
	List(filter PayeeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Payee], error)
	Update(id uint, in PayeeUpdate) (*models.Payee, error)
	Delete(id uint) error
}

// ReferenceServicer exposes the read-only lookup tables.
type ReferenceServicer interface {
	AccountTypes() ([]models.AccountType, error)
	Currencies(activeOnly bool) ([]models.Currency, error)
}

// AnalyticsServicer defines the contract for transaction analytics.
// All operations exclude transfer transactions.
type AnalyticsServicer interface {
	Summary(filter AnalyticsFilter) (*SummaryResult, error)
	Breakdown(dimension, metric string, filter AnalyticsFilter) (*BreakdownResult, error)
	Trend(timeGrain string, filter AnalyticsFilter) (*TrendResult, error)
}

// SchemaServicer reads the store's catalog metadata.
type SchemaServicer interface {
	Schema() (*DatabaseSchema, error)
	Tables() ([]TableInfo, error)
	Table(name string) (*TableSchema, error)
	Relationships() ([]TableRelationship, error)
	ReferenceData(dataType string) (*ReferenceData, error)
}
