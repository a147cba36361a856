// Package score computes the gamified financial-health score and evaluates
// achievement unlocks from the ledger state.
package score

import (
	"time"

	"github.com/shopspring/decimal"

	"verde/internal/models"
)

const (
	Base              = 500
	Min               = 0
	Max               = 1000
	OverBudgetPenalty = 50
	GoalBonus         = 40
	SavingsBonus      = 100
	NegativeSavings   = 100
)

var (
	goodSavingsRate  = decimal.RequireFromString("0.2")
	greatSavingsRate = decimal.RequireFromString("0.5")
)

// Breakdown explains how a score was reached.
type Breakdown struct {
	Base            int             `json:"base"`
	OverBudget      int             `json:"over_budget"`
	OverBudgetCount int             `json:"over_budget_count"`
	Savings         int             `json:"savings"`
	SavingsRate     decimal.Decimal `json:"savings_rate"`
	MonthIncome     decimal.Decimal `json:"month_income"`
	MonthExpense    decimal.Decimal `json:"month_expense"`
	Goals           int             `json:"goals"`
	CompletedGoals  int             `json:"completed_goals"`
	Total           int             `json:"total"`
}

// Compute scores the state as of now. Savings are measured over the
// calendar month containing now.
func Compute(s *models.State, now time.Time) Breakdown {
	b := Breakdown{Base: Base}

	for _, budget := range s.Budgets {
		if budget.IsOver() {
			b.OverBudgetCount++
		}
	}
	b.OverBudget = -OverBudgetPenalty * b.OverBudgetCount

	month := now.Format(models.MonthLayout)
	for _, tx := range s.Transactions {
		if models.MonthOf(tx.Date) != month {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			b.MonthIncome = b.MonthIncome.Add(tx.Amount)
		case models.TransactionTypeExpense:
			b.MonthExpense = b.MonthExpense.Add(tx.Amount)
		}
	}
	if b.MonthIncome.IsPositive() {
		b.SavingsRate = b.MonthIncome.Sub(b.MonthExpense).Div(b.MonthIncome)
		switch {
		case b.SavingsRate.GreaterThan(greatSavingsRate):
			b.Savings = 2 * SavingsBonus
		case b.SavingsRate.GreaterThan(goodSavingsRate):
			b.Savings = SavingsBonus
		case b.SavingsRate.IsNegative():
			b.Savings = -NegativeSavings
		}
	}

	for _, g := range s.Goals {
		if g.IsCompleted() {
			b.CompletedGoals++
		}
	}
	b.Goals = GoalBonus * b.CompletedGoals

	b.Total = clamp(b.Base + b.OverBudget + b.Savings + b.Goals)
	return b
}

// ComputeScore returns only the clamped total.
func ComputeScore(s *models.State, now time.Time) int {
	return Compute(s, now).Total
}

func clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}
