package domain

import (
	"github.com/shopspring/decimal"
)

// Citation is a reference to the statutory section justifying a computed
// line item. Citations are attached for auditability and never used in
// the arithmetic itself.
type Citation struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// RateBand is one bracket of a progressive schedule. UpperBound is an
// exclusive ceiling; a nil UpperBound marks the terminal band covering
// everything above the previous ceiling.
type RateBand struct {
	UpperBound *decimal.Decimal `json:"upper_bound,omitempty" yaml:"upper_bound,omitempty"`
	Rate       decimal.Decimal  `json:"rate" yaml:"rate"`
	Citation   string           `json:"citation" yaml:"citation"`
}

// Unbounded reports whether the band is the terminal +infinity band.
func (b RateBand) Unbounded() bool {
	return b.UpperBound == nil
}

// CorporateRates holds the flat-rate constants of the company computation.
type CorporateRates struct {
	StandardCITRate      decimal.Decimal `json:"standard_cit_rate" yaml:"standard_cit_rate"`
	DevelopmentLevyRate  decimal.Decimal `json:"development_levy_rate" yaml:"development_levy_rate"`
	MinimumEffectiveRate decimal.Decimal `json:"minimum_effective_rate" yaml:"minimum_effective_rate"`
	CompanyCGTRate       decimal.Decimal `json:"company_cgt_rate" yaml:"company_cgt_rate"`
}

// CitationKeys are the lookup keys the dispatcher uses when attaching
// statutory references to a result.
const (
	CitationPIT             = "pit"
	CitationCIT             = "cit"
	CitationCGT             = "cgt"
	CitationDevelopmentLevy = "development_levy"
	CitationMinimumTax      = "minimum_tax"
	CitationWHTCredit       = "wht_credit"
)

// Statutes is the process-wide statutory table: the progressive PIT
// schedule, the corporate rate constants, and the citation registry.
// It is loaded once at startup and treated as immutable thereafter.
type Statutes struct {
	TaxYear   int                 `json:"tax_year" yaml:"tax_year"`
	Bands     []RateBand          `json:"bands" yaml:"bands"`
	Corporate CorporateRates      `json:"corporate" yaml:"corporate"`
	Citations map[string]Citation `json:"citations" yaml:"citations"`
}

// CitationFor resolves a registry key to its Citation. Lookup on a
// validated Statutes table cannot miss; a zero Citation is returned for
// an unknown key so callers stay total.
func (s *Statutes) CitationFor(key string) Citation {
	return s.Citations[key]
}
