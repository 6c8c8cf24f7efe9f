package domain

import (
	"github.com/shopspring/decimal"
)

// BracketLineItem is one row of the progressive breakdown ledger: a band
// actually touched by the taxable amount. Zero-amount bands never appear.
type BracketLineItem struct {
	Label               string          `json:"label"`
	Rate                decimal.Decimal `json:"rate"`
	TaxableAmountInBand decimal.Decimal `json:"taxable_amount_in_band"`
	TaxForBand          decimal.Decimal `json:"tax_for_band"`
	Citation            Citation        `json:"citation"`
}

// IndividualBreakdown carries the line items specific to a personal
// income tax assessment.
type IndividualBreakdown struct {
	TaxableBase        decimal.Decimal   `json:"taxable_base"`
	IncomeTax          decimal.Decimal   `json:"income_tax"`
	IncomeTaxBreakdown []BracketLineItem `json:"income_tax_breakdown"`
	CapitalGainsTax    decimal.Decimal   `json:"capital_gains_tax"`
}

// CompanyBreakdown carries the line items specific to a company income
// tax assessment, including the minimum-effective-tax reconciliation.
type CompanyBreakdown struct {
	IncomeTaxPayable   decimal.Decimal `json:"income_tax_payable"`
	DevelopmentLevy    decimal.Decimal `json:"development_levy"`
	CombinedCurrentTax decimal.Decimal `json:"combined_current_tax"`
	MinimumTaxFloor    decimal.Decimal `json:"minimum_tax_floor"`
	MinimumTaxTopUp    decimal.Decimal `json:"minimum_tax_top_up"`
	CapitalGainsTax    decimal.Decimal `json:"capital_gains_tax"`
}

// TaxResult is the engine's single output record: a category-tagged
// variant with exactly one of Individual or Company populated, plus the
// derived totals common to both and the attached statutory citations.
//
// NetIncome deliberately excludes withholding credits: credits reduce
// what is owed (NetPayable) but are not added back into the displayed
// take-home figure. This asymmetry follows the statute as observed.
type TaxResult struct {
	Category   TaxpayerCategory     `json:"category"`
	Individual *IndividualBreakdown `json:"individual,omitempty"`
	Company    *CompanyBreakdown    `json:"company,omitempty"`

	TotalLiability  decimal.Decimal `json:"total_liability"`
	NetPayable      decimal.Decimal `json:"net_payable"`
	GrossConsidered decimal.Decimal `json:"gross_considered"`
	NetIncome       decimal.Decimal `json:"net_income"`

	Citations []Citation `json:"citations"`
}
