package calculation

import (
	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/ngtax/nta-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// BracketAllocator partitions a taxable amount across an ordered
// progressive schedule and sums the tax. It is a total function over
// non-negative input: callers clamp negatives before invoking it.
type BracketAllocator struct {
	Bands     []domain.RateBand
	Citations map[string]domain.Citation
}

// NewBracketAllocator creates an allocator over a validated statute table
func NewBracketAllocator(statutes *domain.Statutes) *BracketAllocator {
	return &BracketAllocator{
		Bands:     statutes.Bands,
		Citations: statutes.Citations,
	}
}

// Allocate walks the ordered bands. The amount taxed in each band is
// min(remaining, bandWidth); the terminal unbounded band absorbs the
// entire remainder. Bands with nothing taxed in them contribute no line
// item: the breakdown is a ledger of brackets actually touched.
func (ba *BracketAllocator) Allocate(taxableAmount decimal.Decimal) (decimal.Decimal, []domain.BracketLineItem) {
	totalTax := decimal.Zero
	var breakdown []domain.BracketLineItem

	remaining := taxableAmount
	prev := decimal.Zero
	for _, band := range ba.Bands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		var amountInBand decimal.Decimal
		if band.Unbounded() {
			amountInBand = remaining
		} else {
			width := band.UpperBound.Sub(prev)
			amountInBand = decimal.Min(remaining, width)
		}

		if amountInBand.GreaterThan(decimal.Zero) {
			taxForBand := amountInBand.Mul(band.Rate)
			totalTax = totalTax.Add(taxForBand)
			breakdown = append(breakdown, domain.BracketLineItem{
				Label:               ba.bandLabel(band, prev),
				Rate:                band.Rate,
				TaxableAmountInBand: amountInBand,
				TaxForBand:          taxForBand,
				Citation:            ba.Citations[band.Citation],
			})
			remaining = remaining.Sub(amountInBand)
		}

		if !band.Unbounded() {
			prev = *band.UpperBound
		}
	}

	return totalTax, breakdown
}

// bandLabel renders a band as a human-readable naira range
func (ba *BracketAllocator) bandLabel(band domain.RateBand, prev decimal.Decimal) string {
	if band.Unbounded() {
		return "Above " + money.FormatWhole(prev)
	}
	lower := prev.Add(decimal.NewFromInt(1))
	return money.FormatWhole(lower) + " – " + money.FormatWhole(*band.UpperBound)
}
