package cli

import (
	"fmt"
	"strings"

	"verde/internal/budget"
	"verde/internal/events"
	"verde/internal/models"
	"verde/internal/schedule"
	"verde/internal/score"
	"verde/internal/services"
)

// DashboardTables renders the month overview, its category split and the
// recent history.
func DashboardTables(d *services.DashboardSummary, currency string) []Table {
	overview := Table{
		Title:   "Overview " + d.Month,
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Total balance", FormatMoney(d.TotalBalance, currency)},
			{"Invested", FormatMoney(d.TotalInvested, currency)},
			Separator,
			{"Month income", FormatMoney(d.MonthIncome, currency)},
			{"Month expense", FormatMoney(d.MonthExpense, currency)},
			{"Month net", FormatSignedMoney(d.MonthIncome.Sub(d.MonthExpense), currency)},
			Separator,
			{"Overdue schedules", fmt.Sprintf("%d", d.OverdueSchedules)},
			{"Score", fmt.Sprintf("%d", d.Score)},
		},
	}

	categories := Table{
		Title:   "Expenses by category",
		Headers: []string{"Category", "Amount", "Share"},
	}
	for _, c := range d.ExpenseByCategory {
		share := 0.0
		if d.MonthExpense.IsPositive() {
			share = c.Amount.Div(d.MonthExpense).Shift(2).InexactFloat64()
		}
		categories.Rows = append(categories.Rows, []string{c.Label, FormatMoney(c.Amount, currency), FormatPercent(share)})
	}

	history := Table{
		Title:   "History",
		Headers: []string{"Month", "Income", "Expense", "Net"},
	}
	for _, m := range d.History {
		history.Rows = append(history.Rows, []string{
			m.Month,
			FormatMoney(m.Income, currency),
			FormatMoney(m.Expense, currency),
			FormatSignedMoney(m.Income.Sub(m.Expense), currency),
		})
	}

	tables := []Table{overview}
	if len(categories.Rows) > 0 {
		tables = append(tables, categories)
	}
	return append(tables, history)
}

// ScoreTable explains each score component.
func ScoreTable(b score.Breakdown) Table {
	return Table{
		Title:   "Score",
		Headers: []string{"Component", "Detail", "Points"},
		Rows: [][]string{
			{"Base", "", FormatPoints(b.Base)},
			{"Over budget", fmt.Sprintf("%d budget(s)", b.OverBudgetCount), FormatPoints(b.OverBudget)},
			{"Savings", "rate " + FormatRate(b.SavingsRate), FormatPoints(b.Savings)},
			{"Goals", fmt.Sprintf("%d completed", b.CompletedGoals), FormatPoints(b.Goals)},
			Separator,
			{"Total", "", fmt.Sprintf("%d", b.Total)},
		},
	}
}

// AchievementsTable lists unlocked achievements, oldest first.
func AchievementsTable(achievements []models.Achievement) Table {
	t := Table{Title: "Achievements", Headers: []string{"Achievement", "Unlocked"}}
	for _, a := range achievements {
		t.Rows = append(t.Rows, []string{a.Icon + " " + a.Title, models.FormatDate(a.UnlockedAt)})
	}
	return t
}

var scheduleLevels = map[schedule.Status]string{
	schedule.StatusOverdue: "bad",
	schedule.StatusNear:    "warn",
	schedule.StatusOnTime:  "good",
}

// AgendaTable lists schedules by due date with their status.
func AgendaTable(agenda []schedule.Due, currency string) Table {
	t := Table{
		Title:   "Schedules",
		Headers: []string{"ID", "Description", "Due", "When", "Amount", "Status"},
	}
	for _, d := range agenda {
		t.Rows = append(t.Rows, []string{
			d.ID,
			d.Description,
			d.Date,
			FormatDays(d.DaysUntil),
			FormatMoney(d.Amount, currency),
			RenderStatus(string(d.Status), scheduleLevels[d.Status]),
		})
	}
	return t
}

// BudgetTable shows spending against each budget limit.
func BudgetTable(progress []budget.Progress, labels func(categoryID string) string, currency string) Table {
	t := Table{
		Title:   "Budgets",
		Headers: []string{"Category", "Spent", "Limit", "Progress"},
	}
	for _, p := range progress {
		t.Rows = append(t.Rows, []string{
			labels(p.CategoryID),
			FormatMoney(p.Spent, currency),
			FormatMoney(p.Limit, currency),
			RenderProgressBar(p.Percentage, 20),
		})
	}
	return t
}

// SnapshotTable shows how a net-worth snapshot was composed.
func SnapshotTable(s *models.NetWorthSnapshot, currency string) Table {
	return Table{
		Title:   "Net worth " + models.FormatDate(s.RecordedAt),
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Cash", FormatMoney(s.CashBalance, currency)},
			{"Investments", FormatMoney(s.InvestmentValue, currency)},
			{"Debt", FormatMoney(s.DebtBalance.Neg(), currency)},
			Separator,
			{"Net worth", FormatMoney(s.TotalNetWorth, currency)},
		},
	}
}

// EventLine renders one event as a single log-style line.
func EventLine(e events.Event) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render(e.OccurredAt.Format("2006-01-02 15:04:05")))
	b.WriteString(" ")
	b.WriteString(headerStyle.Render(e.Name()))
	if e.EntityID != "" {
		b.WriteString(" ")
		b.WriteString(e.EntityID)
	}
	return b.String()
}
