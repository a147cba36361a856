package budget

import (
	"testing"

	"github.com/shopspring/decimal"

	"verde/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRefresh(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Type: models.TransactionTypeExpense, CategoryID: "cat-alim", Amount: dec("30")},
		{ID: "2", Type: models.TransactionTypeExpense, CategoryID: "cat-alim", Amount: dec("20.5")},
		{ID: "3", Type: models.TransactionTypeIncome, CategoryID: "cat-alim", Amount: dec("1000")},
		{ID: "4", Type: models.TransactionTypeExpense, CategoryID: "cat-rest", Amount: dec("15")},
		{ID: "5", Type: models.TransactionTypeTransfer, CategoryID: models.SystemCategoryTransfer, Amount: dec("99")},
	}

	t.Run("sums expenses per category", func(t *testing.T) {
		budgets := []models.Budget{
			{ID: "b1", CategoryID: "cat-alim", Limit: dec("100")},
			{ID: "b2", CategoryID: "cat-rest", Limit: dec("10")},
		}
		out, changed := Refresh(budgets, txs)
		if !changed {
			t.Fatal("expected changed=true")
		}
		if !out[0].Spent.Equal(dec("50.5")) {
			t.Errorf("expected 50.5, got %s", out[0].Spent)
		}
		if !out[1].Spent.Equal(dec("15")) {
			t.Errorf("expected 15, got %s", out[1].Spent)
		}
		if !budgets[0].Spent.IsZero() {
			t.Error("expected input slice untouched")
		}
	})

	t.Run("no matching transactions gives zero", func(t *testing.T) {
		out, _ := Refresh([]models.Budget{{ID: "b", CategoryID: "cat-none", Limit: dec("1"), Spent: dec("5")}}, txs)
		if !out[0].Spent.IsZero() {
			t.Errorf("expected 0, got %s", out[0].Spent)
		}
	})

	t.Run("unchanged reports false", func(t *testing.T) {
		budgets := []models.Budget{{ID: "b1", CategoryID: "cat-alim", Limit: dec("100"), Spent: dec("50.50")}}
		_, changed := Refresh(budgets, txs)
		if changed {
			t.Error("expected changed=false")
		}
	})

	t.Run("duplicate budgets computed independently", func(t *testing.T) {
		budgets := []models.Budget{
			{ID: "b1", CategoryID: "cat-rest", Limit: dec("100")},
			{ID: "b2", CategoryID: "cat-rest", Limit: dec("5")},
		}
		out, _ := Refresh(budgets, txs)
		for _, b := range out {
			if !b.Spent.Equal(dec("15")) {
				t.Errorf("budget %s: expected 15, got %s", b.ID, b.Spent)
			}
		}
	})
}

func TestProgressOf(t *testing.T) {
	p := ProgressOf(models.Budget{ID: "b1", CategoryID: "c", Limit: dec("200"), Spent: dec("250")})
	if !p.Remaining.Equal(dec("-50")) {
		t.Errorf("expected remaining -50, got %s", p.Remaining)
	}
	if p.Percentage != 125 {
		t.Errorf("expected 125%%, got %v", p.Percentage)
	}
	if !p.Over {
		t.Error("expected over=true")
	}
}
