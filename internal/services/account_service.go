package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
)

const accountFKReason = "account_type_id or currency_code does not exist"

// AccountCreate holds the fields accepted when creating an account.
// current_balance is absent: the store derives it from opening_balance and
// the transaction history.
type AccountCreate struct {
	AccountTypeID      uint
	Name               string
	CurrencyCode       string
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate *models.Date
	AccountNumber      *string
	InstitutionName    *string
	CreditLimit        *decimal.Decimal
	Notes              *string
	IsClosed           *bool
}

// AccountUpdate holds the updatable account fields. Nil means "leave
// unchanged". opening_balance and opening_balance_date are immutable after
// creation and deliberately absent.
type AccountUpdate struct {
	AccountTypeID   *uint
	Name            *string
	CurrencyCode    *string
	AccountNumber   *string
	InstitutionName *string
	CreditLimit     *decimal.Decimal
	Notes           *string
	IsClosed        *bool
}

// AccountFilter narrows account listings. Filters are conjunctive.
type AccountFilter struct {
	AccountTypeID *uint
	CurrencyCode  *string
	IsClosed      *bool
}

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// Create inserts a new account and re-reads it so trigger-maintained fields
// (current_balance, timestamps) come back fresh.
func (s *accountService) Create(in AccountCreate) (*models.Account, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "account_name is required")
	}
	if in.CurrencyCode == "" {
		in.CurrencyCode = "USD"
	}

	account := &models.Account{
		AccountTypeID:      in.AccountTypeID,
		Name:               in.Name,
		CurrencyCode:       in.CurrencyCode,
		OpeningBalance:     in.OpeningBalance,
		AccountNumber:      in.AccountNumber,
		InstitutionName:    in.InstitutionName,
		CreditLimit:        in.CreditLimit,
		Notes:              in.Notes,
		OpeningBalanceDate: models.Today(),
	}
	if in.OpeningBalanceDate != nil {
		account.OpeningBalanceDate = *in.OpeningBalanceDate
	}
	if in.IsClosed != nil {
		account.IsClosed = *in.IsClosed
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, writeError(err, accountFKReason)
	}
	return s.GetByID(account.ID)
}

// GetByID retrieves an account by ID.
func (s *accountService) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, "account_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// List retrieves accounts matching the filter. The total is computed over
// the filtered set before pagination applies.
func (s *accountService) List(filter AccountFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	base := s.db.Model(&models.Account{})
	if filter.AccountTypeID != nil {
		base = base.Where("account_type_id = ?", *filter.AccountTypeID)
	}
	if filter.CurrencyCode != nil {
		base = base.Where("currency_code = ?", *filter.CurrencyCode)
	}
	if filter.IsClosed != nil {
		base = base.Where("is_closed = ?", *filter.IsClosed)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Limit, page.Offset, total)
	return &result, nil
}

// Update applies the non-nil fields of in to the account. Both PUT and
// PATCH route here; fields not supplied are left untouched.
func (s *accountService) Update(id uint, in AccountUpdate) (*models.Account, error) {
	account, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.AccountTypeID != nil {
		updates["account_type_id"] = *in.AccountTypeID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "account_name cannot be empty")
		}
		updates["account_name"] = *in.Name
	}
	if in.CurrencyCode != nil {
		updates["currency_code"] = *in.CurrencyCode
	}
	if in.AccountNumber != nil {
		updates["account_number"] = *in.AccountNumber
	}
	if in.InstitutionName != nil {
		updates["institution_name"] = *in.InstitutionName
	}
	if in.CreditLimit != nil {
		updates["credit_limit"] = *in.CreditLimit
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.IsClosed != nil {
		updates["is_closed"] = *in.IsClosed
	}

	if len(updates) == 0 {
		return account, nil
	}
	if err := s.db.Model(account).Updates(updates).Error; err != nil {
		return nil, writeError(err, accountFKReason)
	}
	return s.GetByID(id)
}

// Delete removes an account. Accounts with transactions cannot be deleted.
func (s *accountService) Delete(id uint) error {
	account, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(account).Error; err != nil {
		return deleteError(err)
	}
	return nil
}
