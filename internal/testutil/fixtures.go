package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"verde/internal/models"
)

// Fixture ids used by NewState.
const (
	CategoryFood   = "cat-food"
	CategoryRent   = "cat-rent"
	CategorySalary = "cat-salary"
	CategoryMarket = "cat-market"

	AccountChecking = "acc-checking"
	AccountSavings  = "acc-savings"
	AccountCard     = "acc-card"
)

// ErrSaveFailed is returned by a MemoryStore when FailSaves is set.
var ErrSaveFailed = errors.New("save failed")

// Money parses a decimal literal, panicking on malformed input.
func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// NewState returns a small ledger: checking holds 1000, savings and the
// credit card are empty, and a basic user starts at the base score.
func NewState() *models.State {
	return &models.State{
		Categories: []models.Category{
			{ID: CategoryFood, Name: "Food", Type: models.CategoryTypeExpense, Icon: "utensils", Color: "#ef4444"},
			{ID: CategoryMarket, Name: "Market", Type: models.CategoryTypeExpense, Icon: "cart", Color: "#f97316", ParentID: StrPtr(CategoryFood)},
			{ID: CategoryRent, Name: "Rent", Type: models.CategoryTypeExpense, Icon: "home", Color: "#6366f1"},
			{ID: CategorySalary, Name: "Salary", Type: models.CategoryTypeIncome, Icon: "wallet", Color: "#22c55e"},
		},
		Accounts: []models.Account{
			{ID: AccountChecking, Name: "Checking", Type: models.AccountTypeBank, Balance: Money("1000")},
			{ID: AccountSavings, Name: "Savings", Type: models.AccountTypeBank, Balance: decimal.Zero},
			{ID: AccountCard, Name: "Card", Type: models.AccountTypeCredit, Balance: decimal.Zero, LastFour: "4242"},
		},
		Transactions: []models.Transaction{},
		Budgets:      []models.Budget{},
		Schedules:    []models.Schedule{},
		Investments:  []models.Investment{},
		Goals:        []models.Goal{},
		User: &models.UserProfile{
			Name:         "Guest",
			Email:        "guest@example.com",
			Plan:         models.PlanBasic,
			Score:        500,
			Achievements: []models.Achievement{},
		},
	}
}

// MemoryStore keeps the state in memory and counts saves.
type MemoryStore struct {
	mu        sync.Mutex
	state     *models.State
	saves     int
	FailSaves bool
}

// NewMemoryStore creates a store holding initial, which may be nil.
func NewMemoryStore(initial *models.State) *MemoryStore {
	s := &MemoryStore{}
	if initial != nil {
		s.state = initial.Clone()
	}
	return s
}

// Load returns a copy of the stored state.
func (m *MemoryStore) Load(_ context.Context) (*models.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	return m.state.Clone(), nil
}

// Save stores a copy of state unless FailSaves is set.
func (m *MemoryStore) Save(_ context.Context, state *models.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return ErrSaveFailed
	}
	m.state = state.Clone()
	m.saves++
	return nil
}

// Saves returns how many saves succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Stored returns a copy of the last saved state.
func (m *MemoryStore) Stored() *models.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Date parses a YYYY-MM-DD date in UTC, panicking on malformed input.
func Date(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// SequentialIDs returns a generator producing "<prefix>-1", "<prefix>-2", ...
// with one counter per generator.
func SequentialIDs() func(prefix string) string {
	var n atomic.Int64
	return func(prefix string) string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
