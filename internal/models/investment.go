package models

import "github.com/shopspring/decimal"

// InvestmentType classifies a holding.
type InvestmentType string

const (
	InvestmentTypeFixed  InvestmentType = "fixed"
	InvestmentTypeStocks InvestmentType = "stocks"
	InvestmentTypeCrypto InvestmentType = "crypto"
	InvestmentTypeFII    InvestmentType = "fii"
	InvestmentTypeOther  InvestmentType = "other"
)

// InvestmentTypes lists every investment type in display order.
var InvestmentTypes = []InvestmentType{
	InvestmentTypeFixed, InvestmentTypeStocks, InvestmentTypeCrypto, InvestmentTypeFII, InvestmentTypeOther,
}

// Valid reports whether t is a known investment type.
func (t InvestmentType) Valid() bool {
	for _, it := range InvestmentTypes {
		if t == it {
			return true
		}
	}
	return false
}

// Investment is a tracked holding. It does not touch account balances.
type Investment struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        InvestmentType  `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Institution string          `json:"institution"`
	Color       string          `json:"color"`
}

// InvestmentPatch carries a partial investment update.
type InvestmentPatch struct {
	Name        *string          `json:"name,omitempty"`
	Type        *InvestmentType  `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Institution *string          `json:"institution,omitempty"`
	Color       *string          `json:"color,omitempty"`
}

// Apply merges the patch into i.
func (p InvestmentPatch) Apply(i *Investment) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Amount != nil {
		i.Amount = *p.Amount
	}
	if p.Institution != nil {
		i.Institution = *p.Institution
	}
	if p.Color != nil {
		i.Color = *p.Color
	}
}

// Equal reports whether i and o hold the same values.
func (i Investment) Equal(o Investment) bool {
	return i.ID == o.ID && i.Name == o.Name && i.Type == o.Type &&
		i.Amount.Equal(o.Amount) && i.Institution == o.Institution && i.Color == o.Color
}
