package services

import (
	"testing"

	"spendtrack/internal/models"
	"spendtrack/internal/pagination"
	"spendtrack/internal/testutil"
)

func TestCategoryCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		category, err := svc.Create(CategoryCreate{
			Name: "Groceries",
			Type: models.CategoryTypeExpense,
		})
		testutil.AssertNoError(t, err)

		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if !category.IsActive {
			t.Error("expected category to default to active")
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.Create(CategoryCreate{Type: models.CategoryTypeExpense})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCategoryList(t *testing.T) {
	t.Run("alphabetical_regardless_of_insert_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.CreateTestCategoryNamed(t, db, "Utilities", models.CategoryTypeExpense)
		testutil.CreateTestCategoryNamed(t, db, "Groceries", models.CategoryTypeExpense)
		testutil.CreateTestCategoryNamed(t, db, "Rent", models.CategoryTypeExpense)

		result, err := svc.List(CategoryFilter{}, pagination.PageRequest{Limit: 100})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(result.Data))
		}
		want := []string{"Groceries", "Rent", "Utilities"}
		for i, name := range want {
			if result.Data[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, result.Data[i].Name)
			}
		}
	})

	t.Run("filter_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		income := models.CategoryTypeIncome
		result, err := svc.List(CategoryFilter{Type: &income}, pagination.PageRequest{Limit: 100})
		testutil.AssertNoError(t, err)

		if result.Pagination.Total != 1 {
			t.Errorf("expected total 1, got %d", result.Pagination.Total)
		}
	})
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		color := "#ff8800"
		updated, err := svc.Update(category.ID, CategoryUpdate{ColorCode: &color})
		testutil.AssertNoError(t, err)

		if updated.ColorCode == nil || *updated.ColorCode != "#ff8800" {
			t.Errorf("expected color #ff8800, got %v", updated.ColorCode)
		}
		if updated.Name != category.Name {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		name := "Ghost"
		_, err := svc.Update(9999, CategoryUpdate{Name: &name})
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestCategoryDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		testutil.AssertNoError(t, svc.Delete(category.ID))

		_, err := svc.GetByID(category.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})

	t.Run("conflict_when_referenced_by_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		_, accountType := testutil.SeedReference(t, db)
		account := testutil.CreateTestAccount(t, db, accountType.ID)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx := testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, "10.00", "2024-01-15")
		testutil.AssertNoError(t, db.Model(tx).Update("category_id", category.ID).Error)

		err := svc.Delete(category.ID)
		testutil.AssertAppError(t, err, "DELETE_CONFLICT")
	})
}
