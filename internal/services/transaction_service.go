package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

const transactionFKReason = "account_id, category_id, payee_id, or currency_code does not exist"

// sortColumns is the allow-list of sortable transaction fields.
var sortColumns = map[string]string{
	"transaction_date": "transaction_date",
	"amount":           "amount",
	"created_at":       "created_at",
}

// TransactionCreate holds the fields accepted when creating a transaction.
// Only income and expense types are writable.
type TransactionCreate struct {
	AccountID       uint
	Type            models.TransactionType
	Amount          decimal.Decimal
	CurrencyCode    string
	BaseAmount      decimal.Decimal
	TransactionDate models.Date
	Status          *models.TransactionStatus
	ExchangeRate    *decimal.Decimal
	PayeeID         *uint
	CategoryID      *uint
	Description     *string
	ReferenceNumber *string
	Location        *string
	Notes           *string
}

// TransactionUpdate holds the updatable transaction fields. Nil means
// "leave unchanged".
type TransactionUpdate struct {
	AccountID       *uint
	Type            *models.TransactionType
	Amount          *decimal.Decimal
	CurrencyCode    *string
	BaseAmount      *decimal.Decimal
	TransactionDate *models.Date
	Status          *models.TransactionStatus
	ExchangeRate    *decimal.Decimal
	PayeeID         *uint
	CategoryID      *uint
	Description     *string
	ReferenceNumber *string
	Location        *string
	Notes           *string
}

// TransactionFilter narrows transaction listings. Filters are conjunctive.
type TransactionFilter struct {
	AccountID  *uint
	CategoryID *uint
	PayeeID    *uint
	Type       *models.TransactionType
	Status     *models.TransactionStatus
	StartDate  *models.Date
	EndDate    *models.Date
}

// TransactionSort selects the listing order.
type TransactionSort struct {
	Field string // transaction_date, amount, or created_at
	Desc  bool
}

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// Create inserts a new transaction. The owning account's balance is
// adjusted by the store's trigger, so the row is re-read after insert.
func (s *transactionService) Create(in TransactionCreate) (*models.Transaction, error) {
	if err := validateWritableType(in.Type); err != nil {
		return nil, err
	}
	if in.Amount.Sign() <= 0 {
		return nil, apperrors.WithDetails(apperrors.ErrValidation,
			map[string]any{"field": "amount", "reason": "must be positive"})
	}
	if in.BaseAmount.Sign() <= 0 {
		return nil, apperrors.WithDetails(apperrors.ErrValidation,
			map[string]any{"field": "base_amount", "reason": "must be positive"})
	}

	tx := &models.Transaction{
		AccountID:       in.AccountID,
		Type:            in.Type,
		Amount:          in.Amount,
		CurrencyCode:    in.CurrencyCode,
		BaseAmount:      in.BaseAmount,
		TransactionDate: in.TransactionDate,
		Status:          models.TransactionStatusCleared,
		ExchangeRate:    decimal.NewFromInt(1),
		PayeeID:         in.PayeeID,
		CategoryID:      in.CategoryID,
		Description:     in.Description,
		ReferenceNumber: in.ReferenceNumber,
		Location:        in.Location,
		Notes:           in.Notes,
	}
	if in.Status != nil {
		tx.Status = *in.Status
	}
	if in.ExchangeRate != nil {
		tx.ExchangeRate = *in.ExchangeRate
	}

	if err := s.db.Create(tx).Error; err != nil {
		return nil, writeError(err, transactionFKReason)
	}
	return s.GetByID(tx.ID)
}

// GetByID retrieves a transaction by ID.
func (s *transactionService) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.First(&tx, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tx, nil
}

// List retrieves transactions matching the filter, ordered by the caller's
// sort choice (transaction_date descending by default). The total is
// computed over the filtered set before pagination applies.
func (s *transactionService) List(filter TransactionFilter, sort TransactionSort, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if sort.Field == "" {
		sort.Field = "transaction_date"
		sort.Desc = true
	}
	column, ok := sortColumns[sort.Field]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrBadRequest, "invalid sort field: "+sort.Field)
	}
	order := column + " ASC"
	if sort.Desc {
		order = column + " DESC"
	}

	base := s.db.Model(&models.Transaction{})
	if filter.AccountID != nil {
		base = base.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		base = base.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PayeeID != nil {
		base = base.Where("payee_id = ?", *filter.PayeeID)
	}
	if filter.Type != nil {
		base = base.Where("transaction_type = ?", *filter.Type)
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		base = base.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		base = base.Where("transaction_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txs []models.Transaction
	if err := base.Order(order).Scopes(pagination.Paginate(page)).Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(txs, page.Limit, page.Offset, total)
	return &result, nil
}

// Update applies the non-nil fields of in to the transaction. Both PUT and
// PATCH route here; fields not supplied are left untouched. The balance
// trigger reconciles the owning account on amount/type/account changes.
func (s *transactionService) Update(id uint, in TransactionUpdate) (*models.Transaction, error) {
	tx, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx.Type == models.TransactionTypeTransfer {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "transfer transactions cannot be modified through this API")
	}

	updates := make(map[string]interface{})
	if in.Type != nil {
		if err := validateWritableType(*in.Type); err != nil {
			return nil, err
		}
		updates["transaction_type"] = *in.Type
	}
	if in.Amount != nil {
		if in.Amount.Sign() <= 0 {
			return nil, apperrors.WithDetails(apperrors.ErrValidation,
				map[string]any{"field": "amount", "reason": "must be positive"})
		}
		updates["amount"] = *in.Amount
	}
	if in.BaseAmount != nil {
		if in.BaseAmount.Sign() <= 0 {
			return nil, apperrors.WithDetails(apperrors.ErrValidation,
				map[string]any{"field": "base_amount", "reason": "must be positive"})
		}
		updates["base_amount"] = *in.BaseAmount
	}
	if in.AccountID != nil {
		updates["account_id"] = *in.AccountID
	}
	if in.CurrencyCode != nil {
		updates["currency_code"] = *in.CurrencyCode
	}
	if in.TransactionDate != nil {
		updates["transaction_date"] = *in.TransactionDate
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.ExchangeRate != nil {
		updates["exchange_rate"] = *in.ExchangeRate
	}
	if in.PayeeID != nil {
		updates["payee_id"] = *in.PayeeID
	}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.ReferenceNumber != nil {
		updates["reference_number"] = *in.ReferenceNumber
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}

	if len(updates) == 0 {
		return tx, nil
	}
	if err := s.db.Model(tx).Updates(updates).Error; err != nil {
		return nil, writeError(err, transactionFKReason)
	}
	return s.GetByID(id)
}

// Delete removes a transaction. The balance trigger reverses its effect on
// the owning account.
func (s *transactionService) Delete(id uint) error {
	tx, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(tx).Error; err != nil {
		return deleteError(err)
	}
	return nil
}

func validateWritableType(t models.TransactionType) error {
	if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
		return apperrors.WithDetails(apperrors.ErrValidation,
			map[string]any{"field": "transaction_type", "reason": "must be income or expense"})
	}
	return nil
}
