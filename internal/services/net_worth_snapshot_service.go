package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/pagination"
)

// netWorthSnapshotService records the ledger's totals over time.
type netWorthSnapshotService struct {
	db     *gorm.DB
	ledger StateReader
}

// NewNetWorthSnapshotService creates a new NetWorthSnapshotServicer reading
// balances from ledger.
func NewNetWorthSnapshotService(db *gorm.DB, ledger StateReader) NetWorthSnapshotServicer {
	return &netWorthSnapshotService{db: db, ledger: ledger}
}

// RecordSnapshot computes the current totals and stores them at recordedAt,
// replacing an existing snapshot with the same timestamp.
func (s *netWorthSnapshotService) RecordSnapshot(ctx context.Context, recordedAt time.Time) (*models.NetWorthSnapshot, error) {
	snapshot := computeSnapshot(s.ledger.State(), recordedAt)

	db := s.db.WithContext(ctx)
	var existing models.NetWorthSnapshot
	err := db.Where("recorded_at = ?", recordedAt).First(&existing).Error
	switch {
	case err == nil:
		snapshot.ID = existing.ID
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"total_net_worth":  snapshot.TotalNetWorth,
			"cash_balance":     snapshot.CashBalance,
			"investment_value": snapshot.InvestmentValue,
			"debt_balance":     snapshot.DebtBalance,
			"score":            snapshot.Score,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(snapshot).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// computeSnapshot splits the net worth into bank cash, credit card debt and
// tracked investments.
func computeSnapshot(state *models.State, recordedAt time.Time) *models.NetWorthSnapshot {
	cash, debt := decimal.Zero, decimal.Zero
	for _, a := range state.Accounts {
		switch a.Type {
		case models.AccountTypeCredit:
			// Credit balances are negative while money is owed.
			debt = debt.Sub(a.Balance)
		default:
			cash = cash.Add(a.Balance)
		}
	}
	invested := summarizePortfolio(state.Investments).TotalInvested

	snapshot := &models.NetWorthSnapshot{
		RecordedAt:      recordedAt,
		TotalNetWorth:   cash.Add(invested).Sub(debt),
		CashBalance:     cash,
		InvestmentValue: invested,
		DebtBalance:     debt,
	}
	if state.User != nil {
		snapshot.Score = state.User.Score
	}
	return snapshot
}

// GetSnapshots returns snapshots within [from, to], newest first.
func (s *netWorthSnapshotService) GetSnapshots(ctx context.Context, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.NetWorthSnapshot{}).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.NetWorthSnapshot
	if err := base.Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
