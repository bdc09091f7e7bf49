package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a financial account. current_balance is maintained
// exclusively by database triggers; the write permission tag keeps GORM from
// ever including it in INSERT or UPDATE statements.
type Account struct {
	ID                 uint             `gorm:"column:account_id;primaryKey" json:"account_id"`
	AccountTypeID      uint             `gorm:"column:account_type_id;not null" json:"account_type_id"`
	Name               string           `gorm:"column:account_name;size:100;not null" json:"account_name"`
	CurrencyCode       string           `gorm:"column:currency_code;size:3;not null;default:'USD'" json:"currency_code"`
	OpeningBalance     decimal.Decimal  `gorm:"column:opening_balance;type:numeric(15,2);not null" json:"opening_balance"`
	CurrentBalance     decimal.Decimal  `gorm:"column:current_balance;type:numeric(15,2);not null;default:0;<-:false" json:"current_balance"`
	AccountNumber      *string          `gorm:"column:account_number;size:50" json:"account_number"`
	InstitutionName    *string          `gorm:"column:institution_name;size:100" json:"institution_name"`
	CreditLimit        *decimal.Decimal `gorm:"column:credit_limit;type:numeric(15,2)" json:"credit_limit"`
	IsClosed           bool             `gorm:"column:is_closed;not null;default:false" json:"is_closed"`
	Notes              *string          `gorm:"column:notes" json:"notes"`
	OpeningBalanceDate Date             `gorm:"column:opening_balance_date;not null" json:"opening_balance_date"`
	CreatedAt          time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"column:updated_at" json:"updated_at"`

	AccountType *AccountType `gorm:"foreignKey:AccountTypeID;references:ID" json:"-"`
	Currency    *Currency    `gorm:"foreignKey:CurrencyCode;references:Code" json:"-"`
}

func (Account) TableName() string { return "accounts" }
