package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/schedule"
)

// historyMonths is how many months the dashboard history covers.
const historyMonths = 6

// MonthTotals is income and expense for one calendar month.
type MonthTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategorySpend is the expense total of one category in a month.
type CategorySpend struct {
	CategoryID string          `json:"category_id"`
	Label      string          `json:"label"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
}

// DashboardSummary is the overview of the ledger for one month.
type DashboardSummary struct {
	Month             string          `json:"month"`
	TotalBalance      decimal.Decimal `json:"total_balance"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	MonthIncome       decimal.Decimal `json:"month_income"`
	MonthExpense      decimal.Decimal `json:"month_expense"`
	ExpenseByCategory []CategorySpend `json:"expense_by_category"`
	History           []MonthTotals   `json:"history"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	OverdueSchedules  int             `json:"overdue_schedules"`
	Score             int             `json:"score"`
}

// GetDashboard summarizes the ledger for month (YYYY-MM). An empty month
// means the current one.
func (f *Finance) GetDashboard(month string) (*DashboardSummary, error) {
	now := f.now()
	if month == "" {
		month = now.Format(models.MonthLayout)
	}
	anchor, err := time.Parse(models.MonthLayout, month)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must use the YYYY-MM format")
	}

	var summary *DashboardSummary
	f.view(func(s *models.State) { summary = buildDashboard(s, anchor, now) })
	return summary, nil
}

func buildDashboard(s *models.State, anchor, now time.Time) *DashboardSummary {
	month := anchor.Format(models.MonthLayout)
	d := &DashboardSummary{
		Month:             month,
		TotalBalance:      decimal.Zero,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		MonthIncome:       decimal.Zero,
		MonthExpense:      decimal.Zero,
		ExpenseByCategory: []CategorySpend{},
		OverdueSchedules:  schedule.OverdueCount(s.Schedules, now),
		TotalInvested:     summarizePortfolio(s.Investments).TotalInvested,
	}
	if s.User != nil {
		d.Score = s.User.Score
	}

	for _, a := range s.Accounts {
		d.TotalBalance = d.TotalBalance.Add(a.Balance)
	}

	keys := make([]string, 0, historyMonths)
	history := make(map[string]*MonthTotals, historyMonths)
	for i := historyMonths - 1; i >= 0; i-- {
		key := anchor.AddDate(0, -i, 0).Format(models.MonthLayout)
		keys = append(keys, key)
		history[key] = &MonthTotals{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range s.Transactions {
		txMonth := models.MonthOf(tx.Date)
		switch tx.Type {
		case models.TransactionTypeIncome:
			d.TotalIncome = d.TotalIncome.Add(tx.Amount)
			if txMonth == month {
				d.MonthIncome = d.MonthIncome.Add(tx.Amount)
			}
			if mt, ok := history[txMonth]; ok {
				mt.Income = mt.Income.Add(tx.Amount)
			}
		case models.TransactionTypeExpense:
			d.TotalExpense = d.TotalExpense.Add(tx.Amount)
			if txMonth == month {
				d.MonthExpense = d.MonthExpense.Add(tx.Amount)
				byCategory[tx.CategoryID] = byCategory[tx.CategoryID].Add(tx.Amount)
			}
			if mt, ok := history[txMonth]; ok {
				mt.Expense = mt.Expense.Add(tx.Amount)
			}
		}
	}

	for _, key := range keys {
		d.History = append(d.History, *history[key])
	}

	for id, amount := range byCategory {
		if amount.IsZero() {
			continue
		}
		c, _ := s.Category(id)
		d.ExpenseByCategory = append(d.ExpenseByCategory, CategorySpend{
			CategoryID: id,
			Label:      s.CategoryLabel(id),
			Color:      c.Color,
			Amount:     amount,
		})
	}
	sort.Slice(d.ExpenseByCategory, func(i, j int) bool {
		a, b := d.ExpenseByCategory[i], d.ExpenseByCategory[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.CategoryID < b.CategoryID
	})
	return d
}

// AvailableMonths lists the current month and every month that has a
// transaction, newest first.
func (f *Finance) AvailableMonths() []string {
	seen := map[string]bool{f.now().Format(models.MonthLayout): true}
	f.view(func(s *models.State) {
		for _, tx := range s.Transactions {
			if m := models.MonthOf(tx.Date); m != "" {
				seen[m] = true
			}
		}
	})

	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}
