package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxpayerCategory selects the computation branch for an assessment.
type TaxpayerCategory string

const (
	CategoryIndividual TaxpayerCategory = "Individual"
	CategoryCompany    TaxpayerCategory = "Company"
)

// ParseCategory resolves a user-facing role label into a TaxpayerCategory.
// "Advisor" is a presentation-layer alias for Individual and never reaches
// the engine as its own branch.
func ParseCategory(role string) (TaxpayerCategory, error) {
	switch role {
	case "Individual", "Advisor":
		return CategoryIndividual, nil
	case "Company":
		return CategoryCompany, nil
	default:
		return "", fmt.Errorf("unknown taxpayer category %q", role)
	}
}

// CalculatorInputs carries every numeric input the engine can consume.
// Only the subset relevant to the selected category is consulted; the
// rest is ignored, not rejected.
type CalculatorInputs struct {
	GrossIncome        decimal.Decimal `json:"gross_income" yaml:"gross_income"`
	Deductions         decimal.Decimal `json:"deductions" yaml:"deductions"`
	CapitalGains       decimal.Decimal `json:"capital_gains" yaml:"capital_gains"`
	WithholdingCredits decimal.Decimal `json:"withholding_credits" yaml:"withholding_credits"`
	IsSmallCompany     bool            `json:"is_small_company" yaml:"is_small_company"`
	ProfitBeforeTax    decimal.Decimal `json:"profit_before_tax" yaml:"profit_before_tax"`
}
