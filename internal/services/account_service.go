package services

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/ledger"
	"verde/internal/models"
)

// AddAccount creates an account. The given balance is its opening balance.
func (f *Finance) AddAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	if err := validateAccount(account); err != nil {
		return nil, err
	}
	account.ID = f.newID(models.PrefixAccount)

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		s.Accounts = append(s.Accounts, account)
		return one(event(events.CollectionAccounts, events.ActionCreated, account.ID,
			map[string]any{"name": account.Name, "type": account.Type, "balance": account.Balance.String()})), nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount merges patch into the account with id. A balance in patch
// posts an adjustment for the difference in the same transition. Unknown ids
// and patches that change nothing are ignored.
func (f *Finance) UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.AccountIndex(id)
		if i < 0 {
			return nil, nil
		}
		updated := s.Accounts[i]
		patch.Apply(&updated)
		if err := validateAccount(updated); err != nil {
			return nil, err
		}

		var evts []events.Event
		if !updated.Equal(s.Accounts[i]) {
			s.Accounts[i] = updated
			evts = append(evts, event(events.CollectionAccounts, events.ActionUpdated, id, nil))
		}
		if patch.Balance != nil {
			if tx, ok := f.postAdjustment(s, updated, *patch.Balance, f.today(), ""); ok {
				evts = append(evts, transactionEvent(events.ActionCreated, tx))
			}
		}
		return evts, nil
	})
}

// postAdjustment records the adjustment that brings account to target and
// returns it. It reports false when the balance already matches.
func (f *Finance) postAdjustment(s *models.State, account models.Account, target decimal.Decimal, date, description string) (models.Transaction, bool) {
	delta := ledger.AdjustmentDelta(account, target)
	if delta.IsZero() {
		return models.Transaction{}, false
	}
	ledger.Create(s, models.Transaction{
		ID:          f.newID(models.PrefixTransaction),
		Description: description,
		Amount:      delta,
		Date:        date,
		AccountID:   account.ID,
		Type:        models.TransactionTypeAdjustment,
	})
	return s.Transactions[0], true
}

// DeleteAccount removes the account with id. Transactions referencing it
// keep the dangling id.
func (f *Finance) DeleteAccount(ctx context.Context, id string) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.AccountIndex(id)
		if i < 0 {
			return nil, nil
		}
		s.Accounts = append(s.Accounts[:i:i], s.Accounts[i+1:]...)
		return one(event(events.CollectionAccounts, events.ActionDeleted, id, nil)), nil
	})
}

// GetAccount returns the account with id.
func (f *Finance) GetAccount(id string) (*models.Account, error) {
	var (
		a  models.Account
		ok bool
	)
	f.view(func(s *models.State) { a, ok = s.Account(id) })
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &a, nil
}

// ListAccounts returns every account.
func (f *Finance) ListAccounts() []models.Account {
	var out []models.Account
	f.view(func(s *models.State) {
		out = make([]models.Account, len(s.Accounts))
		copy(out, s.Accounts)
	})
	return out
}

// AdjustBalance records an adjustment that brings the account to target.
// The stored amount is the delta from the current balance. It returns nil
// when the balance already equals target.
func (f *Finance) AdjustBalance(ctx context.Context, accountID string, target decimal.Decimal, date, description string) (*models.Transaction, error) {
	if date == "" {
		date = f.today()
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	var created *models.Transaction
	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		account, ok := s.Account(accountID)
		if !ok {
			return nil, apperrors.ErrAccountNotFound
		}
		stored, ok := f.postAdjustment(s, account, target, date, description)
		if !ok {
			return nil, nil
		}
		created = &stored
		return one(transactionEvent(events.ActionCreated, stored)), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
