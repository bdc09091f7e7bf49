package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Money parses a decimal literal, failing the test on bad input.
func Money(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", s, err)
	}
	return d
}

// SeedReference inserts the USD currency and a checking account type, the
// minimum reference data account fixtures depend on.
func SeedReference(t *testing.T, db *gorm.DB) (*models.Currency, *models.AccountType) {
	t.Helper()

	symbol := "$"
	currency := &models.Currency{
		Code:          "USD",
		Name:          "US Dollar",
		Symbol:        &symbol,
		DecimalPlaces: 2,
		IsActive:      true,
	}
	if err := db.Create(currency).Error; err != nil {
		t.Fatalf("failed to seed test currency: %v", err)
	}

	accountType := &models.AccountType{
		TypeName: fmt.Sprintf("Checking %d", nextID()),
		IsAsset:  true,
	}
	if err := db.Create(accountType).Error; err != nil {
		t.Fatalf("failed to seed test account type: %v", err)
	}

	return currency, accountType
}

// CreateTestAccount creates an account with a zero opening balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, accountTypeID uint) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, accountTypeID, "0")
}

// CreateTestAccountWithBalance creates an account with the given opening
// balance, re-read after insert so trigger-maintained fields are fresh.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, accountTypeID uint, openingBalance string) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountTypeID:      accountTypeID,
		Name:               fmt.Sprintf("Test Account %d", nextID()),
		CurrencyCode:       "USD",
		OpeningBalance:     Money(t, openingBalance),
		OpeningBalanceDate: models.Today(),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	if err := db.First(account, "account_id = ?", account.ID).Error; err != nil {
		t.Fatalf("failed to reload test account: %v", err)
	}
	return account
}

// CreateTestCategory creates an active category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, fmt.Sprintf("Test Category %d", nextID()), categoryType)
}

// CreateTestCategoryNamed creates an active category with a fixed name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, name string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     name,
		Type:     categoryType,
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestPayee creates an active payee with a unique name.
func CreateTestPayee(t *testing.T, db *gorm.DB) *models.Payee {
	t.Helper()
	return CreateTestPayeeNamed(t, db, fmt.Sprintf("Test Payee %d", nextID()))
}

// CreateTestPayeeNamed creates an active payee with a fixed name.
func CreateTestPayeeNamed(t *testing.T, db *gorm.DB, name string) *models.Payee {
	t.Helper()

	payee := &models.Payee{
		Name:     name,
		IsActive: true,
	}
	if err := db.Create(payee).Error; err != nil {
		t.Fatalf("failed to create test payee: %v", err)
	}
	return payee
}

// CreateTestTransaction creates a cleared transaction of the given type and
// amount on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID uint, txType models.TransactionType, amount, date string) *models.Transaction {
	t.Helper()

	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid transaction date %q: %v", date, err)
	}

	value := Money(t, amount)
	tx := &models.Transaction{
		AccountID:       accountID,
		Type:            txType,
		Amount:          value,
		CurrencyCode:    "USD",
		BaseAmount:      value,
		TransactionDate: d,
		Status:          models.TransactionStatusCleared,
		ExchangeRate:    decimal.NewFromInt(1),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
