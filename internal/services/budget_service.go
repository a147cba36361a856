package services

import (
	"context"

	"github.com/shopspring/decimal"

	"verde/internal/budget"
	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/models"
)

// AddBudget creates a budget. Spent starts at zero and is filled in by the
// next RefreshBudgets.
func (f *Finance) AddBudget(ctx context.Context, b models.Budget) (*models.Budget, error) {
	if err := validateBudget(b); err != nil {
		return nil, err
	}
	b.ID = f.newID(models.PrefixBudget)
	b.Spent = decimal.Zero

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		s.Budgets = append(s.Budgets, b)
		return one(event(events.CollectionBudgets, events.ActionCreated, b.ID,
			map[string]any{"category_id": b.CategoryID, "limit": b.Limit.String()})), nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBudget merges patch into the budget with id. Unknown ids are ignored.
func (f *Finance) UpdateBudget(ctx context.Context, id string, patch models.BudgetPatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.BudgetIndex(id)
		if i < 0 {
			return nil, nil
		}
		updated := s.Budgets[i]
		patch.Apply(&updated)
		if err := validateBudget(updated); err != nil {
			return nil, err
		}
		if updated.Equal(s.Budgets[i]) {
			return nil, nil
		}
		s.Budgets[i] = updated
		return one(event(events.CollectionBudgets, events.ActionUpdated, id, nil)), nil
	})
}

// DeleteBudget removes the budget with id. Unknown ids are ignored.
func (f *Finance) DeleteBudget(ctx context.Context, id string) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.BudgetIndex(id)
		if i < 0 {
			return nil, nil
		}
		s.Budgets = append(s.Budgets[:i:i], s.Budgets[i+1:]...)
		return one(event(events.CollectionBudgets, events.ActionDeleted, id, nil)), nil
	})
}

// GetBudget returns the budget with id.
func (f *Finance) GetBudget(id string) (*models.Budget, error) {
	var (
		b  models.Budget
		ok bool
	)
	f.view(func(s *models.State) {
		if i := s.BudgetIndex(id); i >= 0 {
			b, ok = s.Budgets[i], true
		}
	})
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	return &b, nil
}

// ListBudgets returns every budget.
func (f *Finance) ListBudgets() []models.Budget {
	var out []models.Budget
	f.view(func(s *models.State) {
		out = make([]models.Budget, len(s.Budgets))
		copy(out, s.Budgets)
	})
	return out
}

// RefreshBudgets recomputes every budget's spent amount. Nothing is saved or
// published when the result equals the current values; the return value
// reports whether anything changed.
func (f *Finance) RefreshBudgets(ctx context.Context) (bool, error) {
	changed := false
	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		refreshed, diff := budget.Refresh(s.Budgets, s.Transactions)
		if !diff {
			return nil, nil
		}
		s.Budgets = refreshed
		changed = true
		return one(event(events.CollectionBudgets, events.ActionRefreshed, "",
			map[string]any{"budgets": len(refreshed)})), nil
	})
	return changed, err
}

// GetBudgetProgress returns spending against the limit for one budget.
func (f *Finance) GetBudgetProgress(id string) (*budget.Progress, error) {
	b, err := f.GetBudget(id)
	if err != nil {
		return nil, err
	}
	p := budget.ProgressOf(*b)
	return &p, nil
}
