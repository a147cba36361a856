package handlers

import (
	"verde/internal/budget"
	"verde/internal/models"
	"verde/internal/schedule"
	"verde/internal/score"
	"verde/internal/services"
)

// Response envelopes for the API docs. Handlers write the same shapes with
// gin.H.

// AccountResponse wraps a single account.
type AccountResponse struct {
	Account models.Account `json:"account"`
}

// AccountListResponse wraps every account.
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// ImportResponse lists the transactions created by an import.
type ImportResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// BudgetResponse wraps a single budget.
type BudgetResponse struct {
	Budget models.Budget `json:"budget"`
}

// BudgetListResponse wraps every budget.
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
}

// BudgetRefreshResponse reports whether a refresh changed any budget.
type BudgetRefreshResponse struct {
	Changed bool            `json:"changed"`
	Budgets []models.Budget `json:"budgets"`
}

// BudgetProgressResponse wraps a budget's progress.
type BudgetProgressResponse struct {
	Progress budget.Progress `json:"progress"`
}

// CategoryResponse wraps a single category.
type CategoryResponse struct {
	Category models.Category `json:"category"`
}

// CategoryListResponse wraps the category listing.
type CategoryListResponse struct {
	Categories []services.CategoryView `json:"categories"`
}

// GoalResponse wraps a single goal.
type GoalResponse struct {
	Goal models.Goal `json:"goal"`
}

// GoalListResponse wraps the goal listing.
type GoalListResponse struct {
	Goals []services.GoalView `json:"goals"`
}

// InvestmentResponse wraps a single investment.
type InvestmentResponse struct {
	Investment models.Investment `json:"investment"`
}

// InvestmentListResponse wraps every investment.
type InvestmentListResponse struct {
	Investments []models.Investment `json:"investments"`
}

// PortfolioResponse wraps the portfolio summary.
type PortfolioResponse struct {
	Portfolio services.PortfolioSummary `json:"portfolio"`
}

// SnapshotResponse wraps a net worth snapshot.
type SnapshotResponse struct {
	Snapshot models.NetWorthSnapshot `json:"snapshot"`
}

// UserResponse wraps the user profile.
type UserResponse struct {
	User models.UserProfile `json:"user"`
}

// ScoreResponse wraps the score breakdown.
type ScoreResponse struct {
	Score score.Breakdown `json:"score"`
}

// ScheduleResponse wraps a single schedule.
type ScheduleResponse struct {
	Schedule models.Schedule `json:"schedule"`
}

// AgendaResponse wraps the schedule agenda.
type AgendaResponse struct {
	Schedules []schedule.Due `json:"schedules"`
}

// DashboardResponse wraps the dashboard summary.
type DashboardResponse struct {
	Dashboard services.DashboardSummary `json:"dashboard"`
}

// MonthsResponse lists the months that have transactions.
type MonthsResponse struct {
	Months []string `json:"months"`
}
