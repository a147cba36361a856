// Package ledger implements the posting rules that keep account balances in
// step with transactions. Every function operates on a working copy of the
// State handed in by the caller; nothing here persists or notifies.
package ledger

import (
	"github.com/shopspring/decimal"

	"verde/internal/models"
)

// Post applies the balance effect of tx to the accounts in s.
//
//	income      account += amount
//	expense     account -= amount
//	transfer    account -= amount, toAccount += amount
//	adjustment  account += amount (signed)
//
// Postings to accounts that do not exist are skipped.
func Post(s *models.State, tx models.Transaction) {
	apply(s, tx, decimal.NewFromInt(1))
}

// Reverse applies the exact inverse of Post.
func Reverse(s *models.State, tx models.Transaction) {
	apply(s, tx, decimal.NewFromInt(-1))
}

func apply(s *models.State, tx models.Transaction, sign decimal.Decimal) {
	amount := tx.Amount.Mul(sign)

	switch tx.Type {
	case models.TransactionTypeIncome, models.TransactionTypeAdjustment:
		credit(s, tx.AccountID, amount)
	case models.TransactionTypeExpense:
		credit(s, tx.AccountID, amount.Neg())
	case models.TransactionTypeTransfer:
		credit(s, tx.AccountID, amount.Neg())
		if to := tx.Destination(); to != "" {
			credit(s, to, amount)
		}
	}
}

func credit(s *models.State, accountID string, amount decimal.Decimal) {
	if i := s.AccountIndex(accountID); i >= 0 {
		s.Accounts[i].Balance = s.Accounts[i].Balance.Add(amount)
	}
}

// Create posts tx and stores it as the newest transaction.
func Create(s *models.State, tx models.Transaction) {
	tx.Normalize()
	Post(s, tx)
	s.Transactions = append([]models.Transaction{tx}, s.Transactions...)
}

// Update reverses the stored transaction's posting, merges the patch, and
// posts the result. It returns the updated transaction and false when id is
// unknown, in which case s is untouched.
func Update(s *models.State, id string, patch models.TransactionPatch) (models.Transaction, bool) {
	i := s.TransactionIndex(id)
	if i < 0 {
		return models.Transaction{}, false
	}

	old := s.Transactions[i]
	Reverse(s, old)

	updated := old
	patch.Apply(&updated)
	updated.ID = old.ID
	updated.Normalize()
	Post(s, updated)

	s.Transactions[i] = updated
	return updated, true
}

// Delete reverses and removes the transaction with id. It reports false
// when the id is unknown.
func Delete(s *models.State, id string) (models.Transaction, bool) {
	i := s.TransactionIndex(id)
	if i < 0 {
		return models.Transaction{}, false
	}

	tx := s.Transactions[i]
	Reverse(s, tx)
	s.Transactions = append(s.Transactions[:i:i], s.Transactions[i+1:]...)
	return tx, true
}

// AdjustmentDelta converts a desired target balance into the signed amount
// of an adjustment transaction. Adjustment amounts are always deltas.
func AdjustmentDelta(account models.Account, target decimal.Decimal) decimal.Decimal {
	return target.Sub(account.Balance)
}
