// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendtrack/internal/models"
)

// allModels is the list of all GORM models to auto-migrate in tests, in
// foreign key dependency order.
var allModels = []interface{}{
	&models.Currency{},
	&models.AccountType{},
	&models.Account{},
	&models.Category{},
	&models.Payee{},
	&models.Transaction{},
}

// dbCounter gives each test database a unique name so shared-cache
// connections within one test do not leak rows into another.
var dbCounter atomic.Int64

// SetupTestDB creates an in-memory SQLite database with all models
// migrated and the balance triggers installed. Error translation is on so
// constraint failures classify the same way they do in production.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:spendtrack_test_%d?mode=memory&cache=shared&_foreign_keys=on", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	installBalanceTriggers(t, db)

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// installBalanceTriggers mirrors the production balance triggers in SQLite
// so current_balance behaves the same under tests. SQLite cannot modify NEW
// in a BEFORE trigger, so the initial balance is applied AFTER INSERT.
func installBalanceTriggers(t *testing.T, db *gorm.DB) {
	t.Helper()

	stmts := []string{
		`CREATE TRIGGER IF NOT EXISTS trg_accounts_initial_balance
		AFTER INSERT ON accounts
		BEGIN
			UPDATE accounts SET current_balance = NEW.opening_balance
			WHERE account_id = NEW.account_id;
		END`,
		`CREATE TRIGGER IF NOT EXISTS trg_transactions_balance_insert
		AFTER INSERT ON transactions
		BEGIN
			UPDATE accounts SET current_balance = current_balance +
				CASE NEW.transaction_type
					WHEN 'income' THEN NEW.amount
					WHEN 'expense' THEN -NEW.amount
					ELSE 0
				END
			WHERE account_id = NEW.account_id;
		END`,
		`CREATE TRIGGER IF NOT EXISTS trg_transactions_balance_update
		AFTER UPDATE ON transactions
		BEGIN
			UPDATE accounts SET current_balance = current_balance -
				CASE OLD.transaction_type
					WHEN 'income' THEN OLD.amount
					WHEN 'expense' THEN -OLD.amount
					ELSE 0
				END
			WHERE account_id = OLD.account_id;
			UPDATE accounts SET current_balance = current_balance +
				CASE NEW.transaction_type
					WHEN 'income' THEN NEW.amount
					WHEN 'expense' THEN -NEW.amount
					ELSE 0
				END
			WHERE account_id = NEW.account_id;
		END`,
		`CREATE TRIGGER IF NOT EXISTS trg_transactions_balance_delete
		AFTER DELETE ON transactions
		BEGIN
			UPDATE accounts SET current_balance = current_balance -
				CASE OLD.transaction_type
					WHEN 'income' THEN OLD.amount
					WHEN 'expense' THEN -OLD.amount
					ELSE 0
				END
			WHERE account_id = OLD.account_id;
		END`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to install balance trigger: %v", err)
		}
	}
}
