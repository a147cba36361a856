// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the given ISO currency, e.g. "$1,234.50" or
// "R$1.234,50". Unknown currency codes fall back to "1234.50 XYZ".
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatSignedMoney is FormatMoney with an explicit "+" on positive amounts.
func FormatSignedMoney(amount decimal.Decimal, currency string) string {
	if amount.IsPositive() {
		return "+" + FormatMoney(amount, currency)
	}
	return FormatMoney(amount, currency)
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRate formats a decimal ratio such as 0.25 as "25.0%".
func FormatRate(rate decimal.Decimal) string {
	return FormatPercent(rate.Shift(2).InexactFloat64())
}

// FormatPoints renders a score adjustment with its sign, "0" when neutral.
func FormatPoints(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// FormatDays describes a day offset relative to today.
func FormatDays(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return fmt.Sprintf("in %dd", days)
	}
}
