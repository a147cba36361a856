package models

import "github.com/shopspring/decimal"

// Budget caps spending in a category. Spent is derived from transactions by
// the budget aggregator and is never edited directly.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
}

// IsOver reports whether spending exceeded the limit.
func (b Budget) IsOver() bool {
	return b.Spent.GreaterThan(b.Limit)
}

// BudgetPatch carries a partial budget update.
type BudgetPatch struct {
	CategoryID *string          `json:"category_id,omitempty"`
	Limit      *decimal.Decimal `json:"limit,omitempty"`
}

// Apply merges the patch into b.
func (p BudgetPatch) Apply(b *Budget) {
	if p.CategoryID != nil {
		b.CategoryID = *p.CategoryID
	}
	if p.Limit != nil {
		b.Limit = *p.Limit
	}
}

// Equal reports whether b and o hold the same values.
func (b Budget) Equal(o Budget) bool {
	return b.ID == o.ID && b.CategoryID == o.CategoryID &&
		b.Limit.Equal(o.Limit) && b.Spent.Equal(o.Spent)
}
