package models

import "github.com/shopspring/decimal"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeBank   AccountType = "bank"
	AccountTypeCredit AccountType = "credit"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountTypeBank || t == AccountTypeCredit
}

// Account is a money container. After creation its balance moves only
// through ledger postings.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	LastFour string          `json:"last_four,omitempty"`
}

// AccountPatch carries a partial account update. Balance is a target; the
// service records the difference as an adjustment transaction, so Apply
// leaves the balance alone.
type AccountPatch struct {
	Name     *string          `json:"name,omitempty"`
	Type     *AccountType     `json:"type,omitempty"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	LastFour *string          `json:"last_four,omitempty"`
}

// Apply merges the patch into a.
func (p AccountPatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.LastFour != nil {
		a.LastFour = *p.LastFour
	}
}

var unknownAccount = Account{ID: "", Name: "Unknown account", Type: AccountTypeBank}

// Equal reports whether a and o hold the same values. Balances compare
// numerically.
func (a Account) Equal(o Account) bool {
	return a.ID == o.ID && a.Name == o.Name && a.Type == o.Type &&
		a.Balance.Equal(o.Balance) && a.LastFour == o.LastFour
}
