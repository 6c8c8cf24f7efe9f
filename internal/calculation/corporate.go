package calculation

import (
	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CorporateTaxResolver computes the company-side charges: Company Income
// Tax, the Development Levy, the minimum-effective-tax reconciliation and
// company capital gains tax.
type CorporateTaxResolver struct {
	Rates domain.CorporateRates
}

// NewCorporateTaxResolver creates a resolver over the configured flat rates
func NewCorporateTaxResolver(statutes *domain.Statutes) *CorporateTaxResolver {
	return &CorporateTaxResolver{Rates: statutes.Corporate}
}

// Resolve computes the full company breakdown. Small companies are fully
// exempt from CIT (charged at 0%, not merely discounted) but remain
// liable for the development levy and the minimum-effective-tax floor.
// Company capital gains are charged flat and sit outside the floor
// reconciliation.
func (ctr *CorporateTaxResolver) Resolve(profitBeforeTax decimal.Decimal, isSmallCompany bool, capitalGains decimal.Decimal) domain.CompanyBreakdown {
	citRate := ctr.Rates.StandardCITRate
	if isSmallCompany {
		citRate = decimal.Zero
	}

	incomeTaxPayable := profitBeforeTax.Mul(citRate)
	developmentLevy := profitBeforeTax.Mul(ctr.Rates.DevelopmentLevyRate)
	combinedCurrentTax := incomeTaxPayable.Add(developmentLevy)

	minimumTaxFloor := profitBeforeTax.Mul(ctr.Rates.MinimumEffectiveRate)
	minimumTaxTopUp := decimal.Max(decimal.Zero, minimumTaxFloor.Sub(combinedCurrentTax))

	capitalGainsTax := capitalGains.Mul(ctr.Rates.CompanyCGTRate)

	return domain.CompanyBreakdown{
		IncomeTaxPayable:   incomeTaxPayable,
		DevelopmentLevy:    developmentLevy,
		CombinedCurrentTax: combinedCurrentTax,
		MinimumTaxFloor:    minimumTaxFloor,
		MinimumTaxTopUp:    minimumTaxTopUp,
		CapitalGainsTax:    capitalGainsTax,
	}
}

// TotalCompanyTax sums the positive charges of a company breakdown
func TotalCompanyTax(b domain.CompanyBreakdown) decimal.Decimal {
	return b.CombinedCurrentTax.Add(b.MinimumTaxTopUp).Add(b.CapitalGainsTax)
}
