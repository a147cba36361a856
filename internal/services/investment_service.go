package services

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/models"
)

// TypeAllocation is the share of the portfolio held in one investment type.
type TypeAllocation struct {
	Type       models.InvestmentType `json:"type"`
	Amount     decimal.Decimal       `json:"amount"`
	Count      int                   `json:"count"`
	Percentage float64               `json:"percentage"`
}

// PortfolioSummary aggregates investments by type.
type PortfolioSummary struct {
	TotalInvested decimal.Decimal  `json:"total_invested"`
	Holdings      int              `json:"holdings"`
	ByType        []TypeAllocation `json:"by_type"`
}

// AddInvestment creates an investment.
func (f *Finance) AddInvestment(ctx context.Context, inv models.Investment) (*models.Investment, error) {
	if err := validateInvestment(inv); err != nil {
		return nil, err
	}
	inv.ID = f.newID(models.PrefixInvestment)

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		s.Investments = append(s.Investments, inv)
		return one(event(events.CollectionInvestments, events.ActionCreated, inv.ID,
			map[string]any{"type": inv.Type, "amount": inv.Amount.String()})), nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvestment merges patch into the investment with id. Unknown ids
// are ignored.
func (f *Finance) UpdateInvestment(ctx context.Context, id string, patch models.InvestmentPatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.InvestmentIndex(id)
		if i < 0 {
			return nil, nil
		}
		updated := s.Investments[i]
		patch.Apply(&updated)
		if err := validateInvestment(updated); err != nil {
			return nil, err
		}
		if updated.Equal(s.Investments[i]) {
			return nil, nil
		}
		s.Investments[i] = updated
		return one(event(events.CollectionInvestments, events.ActionUpdated, id, nil)), nil
	})
}

// DeleteInvestment removes the investment with id. Unknown ids are ignored.
func (f *Finance) DeleteInvestment(ctx context.Context, id string) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.InvestmentIndex(id)
		if i < 0 {
			return nil, nil
		}
		s.Investments = append(s.Investments[:i:i], s.Investments[i+1:]...)
		return one(event(events.CollectionInvestments, events.ActionDeleted, id, nil)), nil
	})
}

// GetInvestment returns the investment with id.
func (f *Finance) GetInvestment(id string) (*models.Investment, error) {
	var (
		inv models.Investment
		ok  bool
	)
	f.view(func(s *models.State) {
		if i := s.InvestmentIndex(id); i >= 0 {
			inv, ok = s.Investments[i], true
		}
	})
	if !ok {
		return nil, apperrors.ErrInvestmentNotFound
	}
	return &inv, nil
}

// ListInvestments returns every investment.
func (f *Finance) ListInvestments() []models.Investment {
	var out []models.Investment
	f.view(func(s *models.State) {
		out = make([]models.Investment, len(s.Investments))
		copy(out, s.Investments)
	})
	return out
}

// GetPortfolio totals investments and breaks them down by type. Types with
// no holdings are omitted.
func (f *Finance) GetPortfolio() *PortfolioSummary {
	var investments []models.Investment
	f.view(func(s *models.State) { investments = append(investments, s.Investments...) })
	return summarizePortfolio(investments)
}

func summarizePortfolio(investments []models.Investment) *PortfolioSummary {
	summary := &PortfolioSummary{TotalInvested: decimal.Zero, Holdings: len(investments), ByType: []TypeAllocation{}}

	byType := make(map[models.InvestmentType]*TypeAllocation)
	for _, inv := range investments {
		summary.TotalInvested = summary.TotalInvested.Add(inv.Amount)
		a, ok := byType[inv.Type]
		if !ok {
			a = &TypeAllocation{Type: inv.Type, Amount: decimal.Zero}
			byType[inv.Type] = a
		}
		a.Amount = a.Amount.Add(inv.Amount)
		a.Count++
	}

	for _, t := range models.InvestmentTypes {
		a, ok := byType[t]
		if !ok {
			continue
		}
		if summary.TotalInvested.IsPositive() {
			a.Percentage = a.Amount.Div(summary.TotalInvested).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
		summary.ByType = append(summary.ByType, *a)
	}
	return summary
}
