package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer, TransactionTypeAdjustment:
		return true
	}
	return false
}

// Transaction is a single ledger entry. Amount is non-negative except for
// adjustments, where it is a signed delta applied to the account balance.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CategoryID  string          `json:"category_id"`
	AccountID   string          `json:"account_id"`
	ToAccountID *string         `json:"to_account_id,omitempty"`
	Type        TransactionType `json:"type"`
}

// Destination returns the transfer destination id, or "" when there is none.
func (t Transaction) Destination() string {
	if t.ToAccountID == nil {
		return ""
	}
	return *t.ToAccountID
}

// TransactionPatch carries a partial transaction update.
type TransactionPatch struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	AccountID   *string          `json:"account_id,omitempty"`
	ToAccountID *string          `json:"to_account_id,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Description == nil && p.Amount == nil && p.Date == nil && p.CategoryID == nil &&
		p.AccountID == nil && p.ToAccountID == nil && p.Type == nil
}

// Apply merges the patch into t.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.AccountID != nil {
		t.AccountID = *p.AccountID
	}
	if p.ToAccountID != nil {
		to := *p.ToAccountID
		t.ToAccountID = &to
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
}

// Normalize enforces the system-category and destination rules for the
// transaction's type.
func (t *Transaction) Normalize() {
	switch t.Type {
	case TransactionTypeTransfer:
		t.CategoryID = SystemCategoryTransfer
		if t.Description == "" {
			t.Description = "Transfer"
		}
	case TransactionTypeAdjustment:
		t.CategoryID = SystemCategoryAdjustment
		t.ToAccountID = nil
		if t.Description == "" {
			t.Description = "Balance adjustment"
		}
	default:
		t.ToAccountID = nil
	}
}

// Equal reports whether t and o hold the same values. Amounts compare
// numerically, so "100" equals "100.00".
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Description == o.Description && t.Amount.Equal(o.Amount) &&
		t.Date == o.Date && t.CategoryID == o.CategoryID && t.AccountID == o.AccountID &&
		sameOptional(t.ToAccountID, o.ToAccountID) && t.Type == o.Type
}
