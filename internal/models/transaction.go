package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction. The transfer type exists in the
// store but cannot be created or updated through this API; it is visible on
// reads and always excluded from analytics.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus matches the CHECK constraint on transactions.status.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusCleared    TransactionStatus = "cleared"
	TransactionStatusReconciled TransactionStatus = "reconciled"
	TransactionStatusVoid       TransactionStatus = "void"
)

// Transaction is a financial transaction against an account. Account
// balances are maintained by database triggers, never by application code.
// transfer_account_id is populated only for transfer rows created outside
// this API and is read-only here.
type Transaction struct {
	ID                uint              `gorm:"column:transaction_id;primaryKey" json:"transaction_id"`
	AccountID         uint              `gorm:"column:account_id;not null" json:"account_id"`
	Type              TransactionType   `gorm:"column:transaction_type;size:20;not null" json:"transaction_type"`
	Amount            decimal.Decimal   `gorm:"column:amount;type:numeric(15,2);not null" json:"amount"`
	CurrencyCode      string            `gorm:"column:currency_code;size:3;not null" json:"currency_code"`
	BaseAmount        decimal.Decimal   `gorm:"column:base_amount;type:numeric(15,2);not null" json:"base_amount"`
	TransactionDate   Date              `gorm:"column:transaction_date;not null" json:"transaction_date"`
	Status            TransactionStatus `gorm:"column:status;size:20;not null;default:'cleared'" json:"status"`
	PayeeID           *uint             `gorm:"column:payee_id" json:"payee_id"`
	CategoryID        *uint             `gorm:"column:category_id" json:"category_id"`
	Description       *string           `gorm:"column:description;size:255" json:"description"`
	ReferenceNumber   *string           `gorm:"column:reference_number;size:50" json:"reference_number"`
	ExchangeRate      decimal.Decimal   `gorm:"column:exchange_rate;type:numeric(10,6);not null;default:1.0" json:"exchange_rate"`
	TransferAccountID *uint             `gorm:"column:transfer_account_id;<-:false" json:"transfer_account_id"`
	Location          *string           `gorm:"column:location;size:255" json:"location"`
	Notes             *string           `gorm:"column:notes" json:"notes"`
	CreatedAt         time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"column:updated_at" json:"updated_at"`

	Account  *Account  `gorm:"foreignKey:AccountID;references:ID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	Payee    *Payee    `gorm:"foreignKey:PayeeID;references:ID" json:"-"`
	Currency *Currency `gorm:"foreignKey:CurrencyCode;references:Code" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
