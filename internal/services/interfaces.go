package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"verde/internal/budget"
	"verde/internal/events"
	"verde/internal/models"
	"verde/internal/pagination"
	"verde/internal/schedule"
	"verde/internal/score"
)

// StatePersister loads and saves the whole ledger state. Load returns nil
// when nothing has been stored yet.
type StatePersister interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
}

// StateReader exposes a read-only copy of the current ledger state.
type StateReader interface {
	State() *models.State
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	AddCategory(ctx context.Context, category models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) error
	DeleteCategory(ctx context.Context, id string) error
	GetCategory(id string) (*models.Category, error)
	ListCategories(categoryType *models.CategoryType) []CategoryView
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	AddAccount(ctx context.Context, account models.Account) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) error
	DeleteAccount(ctx context.Context, id string) error
	GetAccount(id string) (*models.Account, error)
	ListAccounts() []models.Account
	AdjustBalance(ctx context.Context, accountID string, target decimal.Decimal, date, description string) (*models.Transaction, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Search     string
	FromDate   string
	ToDate     string
	Type       *models.TransactionType
	CategoryID string
	AccountID  string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	AddTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	ImportTransactions(ctx context.Context, txs []models.Transaction) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) error
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(id string) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) pagination.PageResponse[TransactionView]
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	AddBudget(ctx context.Context, b models.Budget) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) error
	DeleteBudget(ctx context.Context, id string) error
	GetBudget(id string) (*models.Budget, error)
	ListBudgets() []models.Budget
	RefreshBudgets(ctx context.Context) (bool, error)
	GetBudgetProgress(id string) (*budget.Progress, error)
}

// ScheduleServicer defines the contract for schedule-related business logic.
type ScheduleServicer interface {
	AddSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id string, patch models.SchedulePatch) error
	DeleteSchedule(ctx context.Context, id string) error
	GetSchedule(id string) (*models.Schedule, error)
	Agenda() []schedule.Due
	PaySchedule(ctx context.Context, id string) (*models.Transaction, error)
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	AddInvestment(ctx context.Context, inv models.Investment) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, id string, patch models.InvestmentPatch) error
	DeleteInvestment(ctx context.Context, id string) error
	GetInvestment(id string) (*models.Investment, error)
	ListInvestments() []models.Investment
	GetPortfolio() *PortfolioSummary
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	AddGoal(ctx context.Context, g models.Goal) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) error
	DeleteGoal(ctx context.Context, id string) error
	GetGoal(id string) (*models.Goal, error)
	ListGoals() []GoalView
}

// ProfileServicer defines the contract for the local user profile.
type ProfileServicer interface {
	GetProfile() (*models.UserProfile, error)
	Login(ctx context.Context, name, email string) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, patch models.ProfilePatch) error
	Logout(ctx context.Context) error
	GetScore() score.Breakdown
	RecomputeScore(ctx context.Context) error
}

// SummaryServicer defines the contract for dashboard read models.
type SummaryServicer interface {
	GetDashboard(month string) (*DashboardSummary, error)
	AvailableMonths() []string
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, action, resourceType, resourceID string, changes map[string]any)
	Subscriber() events.Handler
	ListAuditLogs(ctx context.Context, resourceType string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

// NetWorthSnapshotServicer defines the contract for net-worth snapshot operations.
type NetWorthSnapshotServicer interface {
	RecordSnapshot(ctx context.Context, recordedAt time.Time) (*models.NetWorthSnapshot, error)
	GetSnapshots(ctx context.Context, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error)
}

var (
	_ CategoryServicer    = (*Finance)(nil)
	_ AccountServicer     = (*Finance)(nil)
	_ TransactionServicer = (*Finance)(nil)
	_ BudgetServicer      = (*Finance)(nil)
	_ ScheduleServicer    = (*Finance)(nil)
	_ InvestmentServicer  = (*Finance)(nil)
	_ GoalServicer        = (*Finance)(nil)
	_ ProfileServicer     = (*Finance)(nil)
	_ SummaryServicer     = (*Finance)(nil)
	_ StateReader         = (*Finance)(nil)
)
