package services

import (
	"testing"

	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
	"spendtrack/internal/testutil"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

func TestTransactionCreate(t *testing.T) {
	t.Run("valid_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)

		tx, err := svc.Create(TransactionCreate{
			AccountID:       account.ID,
			Type:            models.TransactionTypeExpense,
			Amount:          testutil.Money(t, "42.50"),
			CurrencyCode:    "USD",
			BaseAmount:      testutil.Money(t, "42.50"),
			TransactionDate: mustDate(t, "2024-02-10"),
		})
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Status != models.TransactionStatusCleared {
			t.Errorf("expected status to default to cleared, got %s", tx.Status)
		}
		testutil.AssertDecimalEqual(t, "1", tx.ExchangeRate)
	})

	t.Run("expense_decreases_account_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		accountSvc := NewAccountService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, accountType.ID, "100.00")

		_, err := svc.Create(TransactionCreate{
			AccountID:       account.ID,
			Type:            models.TransactionTypeExpense,
			Amount:          testutil.Money(t, "30.00"),
			CurrencyCode:    "USD",
			BaseAmount:      testutil.Money(t, "30.00"),
			TransactionDate: mustDate(t, "2024-02-10"),
		})
		testutil.AssertNoError(t, err)

		reloaded, err := accountSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "70.00", reloaded.CurrentBalance)
	})

	t.Run("income_increases_account_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		accountSvc := NewAccountService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, accountType.ID, "100.00")

		_, err := svc.Create(TransactionCreate{
			AccountID:       account.ID,
			Type:            models.TransactionTypeIncome,
			Amount:          testutil.Money(t, "55.25"),
			CurrencyCode:    "USD",
			BaseAmount:      testutil.Money(t, "55.25"),
			TransactionDate: mustDate(t, "2024-02-11"),
		})
		testutil.AssertNoError(t, err)

		reloaded, err := accountSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "155.25", reloaded.CurrentBalance)
	})

	t.Run("transfer_type_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)

		_, err := svc.Create(TransactionCreate{
			AccountID:       account.ID,
			Type:            models.TransactionTypeTransfer,
			Amount:          testutil.Money(t, "10.00"),
			CurrencyCode:    "USD",
			BaseAmount:      testutil.Money(t, "10.00"),
			TransactionDate: mustDate(t, "2024-02-10"),
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("non_positive_amount_rejected_before_write", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		accountSvc := NewAccountService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, accountType.ID, "100.00")

		_, err := svc.Create(TransactionCreate{
			AccountID:       account.ID,
			Type:            models.TransactionTypeExpense,
			Amount:          testutil.Money(t, "-5.00"),
			CurrencyCode:    "USD",
			BaseAmount:      testutil.Money(t, "5.00"),
			TransactionDate: mustDate(t, "2024-02-10"),
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		// The rejected write must not have touched the balance.
		reloaded, err := accountSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "100.00", reloaded.CurrentBalance)
	})

	t.Run("unknown_account_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		testutil.SeedReference(t, db)

		_, err := svc.Create(TransactionCreate{
			AccountID:       9999,
			Type:            models.TransactionTypeExpense,
			Amount:          testutil.Money(t, "10.00"),
			CurrencyCode:    "USD",
			BaseAmount:      testutil.Money(t, "10.00"),
			TransactionDate: mustDate(t, "2024-02-10"),
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestTransactionList(t *testing.T) {
	t.Run("default_sort_is_date_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)

		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "10.00", "2024-01-01")
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "20.00", "2024-03-01")
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "30.00", "2024-02-01")

		result, err := svc.List(TransactionFilter{}, TransactionSort{}, pagination.PageRequest{Limit: 50})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(result.Data))
		}
		if result.Data[0].TransactionDate.String() != "2024-03-01" {
			t.Errorf("expected newest first, got %s", result.Data[0].TransactionDate)
		}
		if result.Data[2].TransactionDate.String() != "2024-01-01" {
			t.Errorf("expected oldest last, got %s", result.Data[2].TransactionDate)
		}
	})

	t.Run("sort_by_amount_ascending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)

		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "30.00", "2024-01-01")
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "10.00", "2024-01-02")

		result, err := svc.List(TransactionFilter{}, TransactionSort{Field: "amount"}, pagination.PageRequest{Limit: 50})
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, "10.00", result.Data[0].Amount)
		testutil.AssertDecimalEqual(t, "30.00", result.Data[1].Amount)
	})

	t.Run("invalid_sort_field", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.List(TransactionFilter{}, TransactionSort{Field: "payee_name"}, pagination.PageRequest{Limit: 50})
		testutil.AssertAppError(t, err, "BAD_REQUEST")
	})

	t.Run("date_range_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)

		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "10.00", "2024-01-15")
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "20.00", "2024-02-15")
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "30.00", "2024-03-15")

		start := mustDate(t, "2024-02-01")
		end := mustDate(t, "2024-02-28")
		result, err := svc.List(TransactionFilter{StartDate: &start, EndDate: &end}, TransactionSort{}, pagination.PageRequest{Limit: 50})
		testutil.AssertNoError(t, err)

		if result.Pagination.Total != 1 {
			t.Errorf("expected total 1, got %d", result.Pagination.Total)
		}
	})

	t.Run("filter_by_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account1 := testutil.CreateTestAccount(t, db, accountType.ID)
		account2 := testutil.CreateTestAccount(t, db, accountType.ID)

		testutil.CreateTestTransaction(t, db, account1.ID, models.TransactionTypeExpense, "10.00", "2024-01-15")
		testutil.CreateTestTransaction(t, db, account2.ID, models.TransactionTypeExpense, "20.00", "2024-01-16")

		result, err := svc.List(TransactionFilter{AccountID: &account2.ID}, TransactionSort{}, pagination.PageRequest{Limit: 50})
		testutil.AssertNoError(t, err)

		if result.Pagination.Total != 1 {
			t.Fatalf("expected total 1, got %d", result.Pagination.Total)
		}
		testutil.AssertDecimalEqual(t, "20.00", result.Data[0].Amount)
	})
}

func TestTransactionUpdate(t *testing.T) {
	t.Run("amount_change_reconciles_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		accountSvc := NewAccountService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, accountType.ID, "100.00")
		tx := testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "30.00", "2024-01-15")

		amount := testutil.Money(t, "50.00")
		_, err := svc.Update(tx.ID, TransactionUpdate{Amount: &amount, BaseAmount: &amount})
		testutil.AssertNoError(t, err)

		reloaded, err := accountSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "50.00", reloaded.CurrentBalance)
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)
		tx := testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "30.00", "2024-01-15")

		amount := testutil.Money(t, "0")
		_, err := svc.Update(tx.ID, TransactionUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("transfer_rows_are_read_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)
		tx := testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeTransfer, "25.00", "2024-01-15")

		notes := "renamed"
		_, err := svc.Update(tx.ID, TransactionUpdate{Notes: &notes})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		notes := "missing"
		_, err := svc.Update(9999, TransactionUpdate{Notes: &notes})
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestTransactionDelete(t *testing.T) {
	t.Run("delete_restores_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		accountSvc := NewAccountService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, accountType.ID, "100.00")
		tx := testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "40.00", "2024-01-15")

		testutil.AssertNoError(t, svc.Delete(tx.ID))

		reloaded, err := accountSvc.GetByID(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "100.00", reloaded.CurrentBalance)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		err := svc.Delete(9999)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
