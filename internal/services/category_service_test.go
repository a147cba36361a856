package services

import (
	"context"
	"testing"

	"verde/internal/models"
	"verde/internal/pagination"
	"verde/internal/testutil"
)

var pageAll = pagination.PageRequest{Page: 1, PageSize: 100}

func TestAddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("child_of_top_level", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		cat, err := f.AddCategory(ctx, models.Category{Name: "Restaurants", Type: models.CategoryTypeExpense, ParentID: testutil.StrPtr(testutil.CategoryFood)})
		testutil.AssertNoError(t, err)

		for _, v := range f.ListCategories(nil) {
			if v.ID == cat.ID && v.Label != "Food > Restaurants" {
				t.Errorf("expected label 'Food > Restaurants', got %q", v.Label)
			}
		}
	})

	t.Run("grandchild_rejected", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		_, err := f.AddCategory(ctx, models.Category{Name: "Fruit", Type: models.CategoryTypeExpense, ParentID: testutil.StrPtr(testutil.CategoryMarket)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_parent", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		_, err := f.AddCategory(ctx, models.Category{Name: "Fruit", Type: models.CategoryTypeExpense, ParentID: testutil.StrPtr("cat-nope")})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("invalid_type", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		_, err := f.AddCategory(ctx, models.Category{Name: "Misc", Type: "other"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("self_parent", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		err := f.UpdateCategory(ctx, testutil.CategoryRent, models.CategoryPatch{ParentID: testutil.StrPtr(testutil.CategoryRent)})
		testutil.AssertAppError(t, err, "SELF_PARENT_CATEGORY")
	})

	t.Run("clear_parent", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		testutil.AssertNoError(t, f.UpdateCategory(ctx, testutil.CategoryMarket, models.CategoryPatch{ClearParent: true}))

		cat, err := f.GetCategory(testutil.CategoryMarket)
		testutil.AssertNoError(t, err)
		if cat.ParentID != nil {
			t.Errorf("expected parent to be cleared, got %s", *cat.ParentID)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches_children", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		testutil.AssertNoError(t, f.DeleteCategory(ctx, testutil.CategoryFood))

		child, err := f.GetCategory(testutil.CategoryMarket)
		testutil.AssertNoError(t, err)
		if child.ParentID != nil {
			t.Error("expected child to become top-level")
		}
		_, err = f.GetCategory(testutil.CategoryFood)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("system_category", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())

		err := f.DeleteCategory(ctx, models.SystemCategoryTransfer)
		testutil.AssertAppError(t, err, "SYSTEM_CATEGORY")
	})

	t.Run("dangling_label", func(t *testing.T) {
		f, _ := newTestFinance(t, testutil.NewState())
		_, err := f.AddTransaction(ctx, models.Transaction{
			Amount: testutil.Money("900"), Date: "2024-03-01", CategoryID: testutil.CategoryRent,
			AccountID: testutil.AccountChecking, Type: models.TransactionTypeExpense,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, f.DeleteCategory(ctx, testutil.CategoryRent))

		views := f.ListTransactions(TransactionFilter{}, pageAll)
		if views.Data[0].CategoryLabel != "Unknown" {
			t.Errorf("expected Unknown label, got %q", views.Data[0].CategoryLabel)
		}
	})
}

func TestListCategories(t *testing.T) {
	f, _ := newTestFinance(t, testutil.NewState())

	incomeType := models.CategoryTypeIncome
	got := f.ListCategories(&incomeType)
	if len(got) != 1 || got[0].ID != testutil.CategorySalary {
		t.Errorf("expected only the salary category, got %+v", got)
	}
	if all := f.ListCategories(nil); len(all) != 4 {
		t.Errorf("expected 4 categories, got %d", len(all))
	}

	sys, err := f.GetCategory(models.SystemCategoryAdjustment)
	testutil.AssertNoError(t, err)
	if sys.ID != models.SystemCategoryAdjustment {
		t.Errorf("expected system category to resolve, got %+v", sys)
	}
}
