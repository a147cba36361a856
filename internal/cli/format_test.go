package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		expected string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0", "USD", "$0.00"},
		{"-149.75", "USD", "-$149.75"},
		{"0.005", "USD", "$0.01"},
		{"12", "usd", "$12.00"},
		{"1234.5", "XYZ", "1234.50 XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"_"+tt.currency, func(t *testing.T) {
			got := FormatMoney(decimal.RequireFromString(tt.amount), tt.currency)
			if got != tt.expected {
				t.Errorf("FormatMoney(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.expected)
			}
		})
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(decimal.NewFromInt(5), "USD"); got != "+$5.00" {
		t.Errorf("expected +$5.00, got %q", got)
	}
	if got := FormatSignedMoney(decimal.NewFromInt(-5), "USD"); got != "-$5.00" {
		t.Errorf("expected -$5.00, got %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(decimal.RequireFromString("0.255")); got != "25.5%" {
		t.Errorf("expected 25.5%%, got %q", got)
	}
}

func TestFormatPoints(t *testing.T) {
	tests := map[int]string{200: "+200", 0: "0", -50: "-50"}
	for n, expected := range tests {
		if got := FormatPoints(n); got != expected {
			t.Errorf("FormatPoints(%d) = %q, want %q", n, got, expected)
		}
	}
}

func TestFormatDays(t *testing.T) {
	tests := map[int]string{
		0:  "today",
		1:  "tomorrow",
		-1: "yesterday",
		-5: "5d ago",
		3:  "in 3d",
	}
	for days, expected := range tests {
		if got := FormatDays(days); got != expected {
			t.Errorf("FormatDays(%d) = %q, want %q", days, got, expected)
		}
	}
}
