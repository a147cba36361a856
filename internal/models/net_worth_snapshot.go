package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NetWorthSnapshot is a point-in-time record of the ledger's totals.
// This is immutable time-series data, so it carries no Base embed.
type NetWorthSnapshot struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	RecordedAt      time.Time       `gorm:"not null;uniqueIndex" json:"recorded_at"`
	TotalNetWorth   decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"total_net_worth"`
	CashBalance     decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"cash_balance"`
	InvestmentValue decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"investment_value"`
	DebtBalance     decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"debt_balance"`
	Score           int             `gorm:"not null" json:"score"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *NetWorthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = newUUID()
	}
	return nil
}
