// Package budget derives budget consumption from the transaction list.
package budget

import (
	"github.com/shopspring/decimal"

	"verde/internal/models"
)

// Refresh recomputes Spent for every budget as the all-time sum of expense
// transactions in the budget's category. It returns the new slice and whether
// any value differs from the input. Budgets sharing a category are computed
// independently.
func Refresh(budgets []models.Budget, transactions []models.Transaction) ([]models.Budget, bool) {
	spent := SpentByCategory(transactions)

	out := make([]models.Budget, len(budgets))
	changed := false
	for i, b := range budgets {
		next, ok := spent[b.CategoryID]
		if !ok {
			next = decimal.Zero
		}
		if !b.Spent.Equal(next) {
			changed = true
		}
		b.Spent = next
		out[i] = b
	}
	return out, changed
}

// SpentByCategory sums expense amounts per category id.
func SpentByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	spent := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		spent[tx.CategoryID] = spent[tx.CategoryID].Add(tx.Amount)
	}
	return spent
}

// Progress contains spending vs limit data for one budget.
type Progress struct {
	BudgetID   string          `json:"budget_id"`
	CategoryID string          `json:"category_id"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Over       bool            `json:"over"`
}

// ProgressOf builds the progress view of b.
func ProgressOf(b models.Budget) Progress {
	p := Progress{
		BudgetID:   b.ID,
		CategoryID: b.CategoryID,
		Limit:      b.Limit,
		Spent:      b.Spent,
		Remaining:  b.Limit.Sub(b.Spent),
		Over:       b.IsOver(),
	}
	if b.Limit.IsPositive() {
		p.Percentage = b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return p
}
