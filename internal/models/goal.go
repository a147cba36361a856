package models

import "github.com/shopspring/decimal"

// Goal is a savings target.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline,omitempty"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
}

// IsCompleted reports whether the current amount reached the target.
func (g Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns the completion percentage capped at 100.
func (g Goal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 100
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// GoalPatch carries a partial goal update.
type GoalPatch struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	Color         *string          `json:"color,omitempty"`
}

// Apply merges the patch into g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Icon != nil {
		g.Icon = *p.Icon
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
}

// Equal reports whether g and o hold the same values.
func (g Goal) Equal(o Goal) bool {
	return g.ID == o.ID && g.Name == o.Name &&
		g.TargetAmount.Equal(o.TargetAmount) && g.CurrentAmount.Equal(o.CurrentAmount) &&
		g.Deadline == o.Deadline && g.Icon == o.Icon && g.Color == o.Color
}
