package models

import "github.com/shopspring/decimal"

// Frequency is how often a schedule recurs.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyMonthly, FrequencyWeekly:
		return true
	}
	return false
}

// Schedule is a template for a future transaction. Date is the next due date.
type Schedule struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Frequency   Frequency       `json:"frequency"`
	CategoryID  string          `json:"category_id"`
	AccountID   string          `json:"account_id"`
	ToAccountID *string         `json:"to_account_id,omitempty"`
	Type        TransactionType `json:"type"`
}

// SchedulePatch carries a partial schedule update.
type SchedulePatch struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Frequency   *Frequency       `json:"frequency,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	AccountID   *string          `json:"account_id,omitempty"`
	ToAccountID *string          `json:"to_account_id,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
}

// Apply merges the patch into s.
func (p SchedulePatch) Apply(s *Schedule) {
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Amount != nil {
		s.Amount = *p.Amount
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Frequency != nil {
		s.Frequency = *p.Frequency
	}
	if p.CategoryID != nil {
		s.CategoryID = *p.CategoryID
	}
	if p.AccountID != nil {
		s.AccountID = *p.AccountID
	}
	if p.ToAccountID != nil {
		to := *p.ToAccountID
		s.ToAccountID = &to
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
}

// Equal reports whether s and o hold the same values.
func (s Schedule) Equal(o Schedule) bool {
	return s.ID == o.ID && s.Description == o.Description && s.Amount.Equal(o.Amount) &&
		s.Date == o.Date && s.Frequency == o.Frequency && s.CategoryID == o.CategoryID &&
		s.AccountID == o.AccountID && sameOptional(s.ToAccountID, o.ToAccountID) && s.Type == o.Type
}
