package services

import (
	"context"
	"strings"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/ledger"
	"verde/internal/models"
	"verde/internal/pagination"
)

// TransactionView is a transaction with its references resolved for display.
// Dangling references resolve to "Unknown" names.
type TransactionView struct {
	models.Transaction
	CategoryLabel string `json:"category_label"`
	AccountName   string `json:"account_name"`
	ToAccountName string `json:"to_account_name,omitempty"`
}

func transactionEvent(action events.Action, tx models.Transaction) events.Event {
	return event(events.CollectionTransactions, action, tx.ID, map[string]any{
		"type":       tx.Type,
		"amount":     tx.Amount.String(),
		"account_id": tx.AccountID,
		"date":       tx.Date,
	})
}

// AddTransaction posts tx to its accounts and stores it as the newest
// transaction. An empty date means today.
func (f *Finance) AddTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	created, err := f.ImportTransactions(ctx, []models.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// ImportTransactions validates and posts a batch in a single state
// transition, in the given order. Nothing is applied if any record is
// invalid.
func (f *Finance) ImportTransactions(ctx context.Context, txs []models.Transaction) ([]models.Transaction, error) {
	if len(txs) == 0 {
		return []models.Transaction{}, nil
	}

	prepared := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		tx.ID = f.newID(models.PrefixTransaction)
		if tx.Date == "" {
			tx.Date = f.today()
		}
		tx.Normalize()
		if err := validateTransaction(tx); err != nil {
			return nil, recordError(i, len(txs), err)
		}
		prepared[i] = tx
	}

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		evts := make([]events.Event, 0, len(prepared))
		for _, tx := range prepared {
			ledger.Create(s, tx)
			evts = append(evts, transactionEvent(events.ActionCreated, tx))
		}
		return evts, nil
	})
	if err != nil {
		return nil, err
	}
	return prepared, nil
}

// UpdateTransaction reverses the stored posting, merges patch, and posts the
// result, all in one transition. Unknown ids and patches that change nothing
// are ignored.
func (f *Finance) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.TransactionIndex(id)
		if i < 0 || patch.IsEmpty() {
			return nil, nil
		}
		candidate := s.Transactions[i]
		patch.Apply(&candidate)
		candidate.Normalize()
		if err := validateTransaction(candidate); err != nil {
			return nil, err
		}
		if candidate.Equal(s.Transactions[i]) {
			return nil, nil
		}

		updated, _ := ledger.Update(s, id, patch)
		return one(transactionEvent(events.ActionUpdated, updated)), nil
	})
}

// DeleteTransaction reverses and removes the transaction with id. Unknown
// ids are ignored.
func (f *Finance) DeleteTransaction(ctx context.Context, id string) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		removed, ok := ledger.Delete(s, id)
		if !ok {
			return nil, nil
		}
		return one(transactionEvent(events.ActionDeleted, removed)), nil
	})
}

// GetTransaction returns the transaction with id.
func (f *Finance) GetTransaction(id string) (*models.Transaction, error) {
	var (
		tx models.Transaction
		ok bool
	)
	f.view(func(s *models.State) {
		if i := s.TransactionIndex(id); i >= 0 {
			tx, ok = s.Transactions[i], true
		}
	})
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &tx, nil
}

// ListTransactions returns a page of transactions, newest first, matching
// every set field of filter.
func (f *Finance) ListTransactions(filter TransactionFilter, page pagination.PageRequest) pagination.PageResponse[TransactionView] {
	var matched []TransactionView
	f.view(func(s *models.State) {
		for _, tx := range s.Transactions {
			if !filter.matches(tx) {
				continue
			}
			matched = append(matched, viewTransaction(s, tx))
		}
	})
	return pagination.Slice(matched, page)
}

func viewTransaction(s *models.State, tx models.Transaction) TransactionView {
	v := TransactionView{Transaction: tx, CategoryLabel: s.CategoryLabel(tx.CategoryID)}
	acc, _ := s.Account(tx.AccountID)
	v.AccountName = acc.Name
	if to := tx.Destination(); to != "" {
		dest, _ := s.Account(to)
		v.ToAccountName = dest.Name
	}
	return v
}

func (tf TransactionFilter) matches(tx models.Transaction) bool {
	if tf.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(tf.Search)) {
		return false
	}
	// YYYY-MM-DD strings order the same way as the dates they encode.
	if tf.FromDate != "" && tx.Date < tf.FromDate {
		return false
	}
	if tf.ToDate != "" && tx.Date > tf.ToDate {
		return false
	}
	if tf.Type != nil && tx.Type != *tf.Type {
		return false
	}
	if tf.CategoryID != "" && tx.CategoryID != tf.CategoryID {
		return false
	}
	if tf.AccountID != "" && tx.AccountID != tf.AccountID && tx.Destination() != tf.AccountID {
		return false
	}
	return true
}
