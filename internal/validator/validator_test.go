package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func newValidate() *validator.Validate {
	v := validator.New()
	RegisterOn(v)
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate()

	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"hex_color", "#22c55e", true},
		{"hex_color", "#fff", true},
		{"hex_color", "green", false},
		{"transaction_type", "adjustment", true},
		{"transaction_type", "investment", false},
		{"category_type", "income", true},
		{"category_type", "transfer", false},
		{"account_type", "credit", true},
		{"account_type", "cash", false},
		{"frequency", "weekly", true},
		{"frequency", "yearly", false},
		{"investment_type", "fii", true},
		{"investment_type", "bond", false},
		{"plan", "premium", true},
		{"plan", "gold", false},
		{"iso_date", "2024-02-29", true},
		{"iso_date", "2023-02-29", false},
		{"iso_date", "15/01/2024", false},
		{"year_month", "2024-03", true},
		{"year_month", "2024-13", false},
	}
	for _, tc := range tests {
		t.Run(tc.tag+"_"+tc.value, func(t *testing.T) {
			err := v.Var(tc.value, tc.tag)
			if tc.valid && err != nil {
				t.Errorf("expected %q to pass %s: %v", tc.value, tc.tag, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("expected %q to fail %s", tc.value, tc.tag)
			}
		})
	}
}

func TestDecimalFields(t *testing.T) {
	v := newValidate()

	type request struct {
		Limit  decimal.Decimal  `validate:"gt=0"`
		Amount *decimal.Decimal `validate:"omitempty,gte=0"`
	}

	negative := decimal.RequireFromString("-1")
	tests := []struct {
		name  string
		req   request
		valid bool
	}{
		{"positive", request{Limit: decimal.RequireFromString("10.5")}, true},
		{"zero_limit", request{Limit: decimal.Zero}, false},
		{"negative_pointer", request{Limit: decimal.NewFromInt(1), Amount: &negative}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.valid != (err == nil) {
				t.Errorf("expected valid=%v, got %v", tc.valid, err)
			}
		})
	}
}
