package output

import (
	"github.com/ngtax/nta-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as naira with kobo and digit grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatRate formats a fractional rate (0.15) as a percentage ("15%").
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}
