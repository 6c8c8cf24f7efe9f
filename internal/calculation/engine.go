package calculation

import (
	"fmt"

	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine dispatches a computation request to the category-appropriate
// calculator and assembles the uniform result record. It holds no state
// between calls: every Compute produces a fresh result from its inputs
// and the immutable statute table.
type Engine struct {
	Statutes  *domain.Statutes
	Allocator *BracketAllocator
	Corporate *CorporateTaxResolver
	Logger    Logger
}

// NewEngine creates a new computation engine over a validated statute table
func NewEngine(statutes *domain.Statutes) *Engine {
	return &Engine{
		Statutes:  statutes,
		Allocator: NewBracketAllocator(statutes),
		Corporate: NewCorporateTaxResolver(statutes),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Compute validates the inputs, runs the computation for the given
// category and returns the assembled result with its statutory citations.
// Validation rejects rather than clamps: a missing or negative amount is
// a caller defect, never a zero-liability answer.
func (e *Engine) Compute(category domain.TaxpayerCategory, inputs domain.CalculatorInputs) (*domain.TaxResult, error) {
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	var result *domain.TaxResult
	switch category {
	case domain.CategoryIndividual:
		result = e.computeIndividual(inputs)
	case domain.CategoryCompany:
		result = e.computeCompany(inputs)
	default:
		return nil, fmt.Errorf("unknown taxpayer category %q", category)
	}

	e.attachCitations(result, inputs)
	e.Logger.Debugf("computed %s assessment: liability=%s net_payable=%s",
		result.Category, result.TotalLiability, result.NetPayable)
	return result, nil
}

// computeIndividual runs the progressive schedule twice: once on the
// taxable base and once, independently from zero, on capital gains.
func (e *Engine) computeIndividual(inputs domain.CalculatorInputs) *domain.TaxResult {
	taxableBase := decimal.Max(decimal.Zero, inputs.GrossIncome.Sub(inputs.Deductions))

	incomeTax, breakdown := e.Allocator.Allocate(taxableBase)
	capitalGainsTax, _ := e.Allocator.Allocate(inputs.CapitalGains)

	totalLiability := incomeTax.Add(capitalGainsTax)
	grossConsidered := inputs.GrossIncome.Add(inputs.CapitalGains)

	return &domain.TaxResult{
		Category: domain.CategoryIndividual,
		Individual: &domain.IndividualBreakdown{
			TaxableBase:        taxableBase,
			IncomeTax:          incomeTax,
			IncomeTaxBreakdown: breakdown,
			CapitalGainsTax:    capitalGainsTax,
		},
		TotalLiability:  totalLiability,
		NetPayable:      decimal.Max(decimal.Zero, totalLiability.Sub(inputs.WithholdingCredits)),
		GrossConsidered: grossConsidered,
		NetIncome:       grossConsidered.Sub(totalLiability),
	}
}

// computeCompany delegates to the corporate resolver and derives the
// common totals, substituting profit before tax for gross income.
func (e *Engine) computeCompany(inputs domain.CalculatorInputs) *domain.TaxResult {
	breakdown := e.Corporate.Resolve(inputs.ProfitBeforeTax, inputs.IsSmallCompany, inputs.CapitalGains)

	totalLiability := TotalCompanyTax(breakdown)
	grossConsidered := inputs.ProfitBeforeTax.Add(inputs.CapitalGains)

	return &domain.TaxResult{
		Category:        domain.CategoryCompany,
		Company:         &breakdown,
		TotalLiability:  totalLiability,
		NetPayable:      decimal.Max(decimal.Zero, totalLiability.Sub(inputs.WithholdingCredits)),
		GrossConsidered: grossConsidered,
		NetIncome:       grossConsidered.Sub(totalLiability),
	}
}

// attachCitations appends the deterministic citation set for the result.
// Pure lookup into the validated registry: no arithmetic, no misses.
func (e *Engine) attachCitations(result *domain.TaxResult, inputs domain.CalculatorInputs) {
	var keys []string
	switch result.Category {
	case domain.CategoryIndividual:
		keys = append(keys, domain.CitationPIT)
	case domain.CategoryCompany:
		keys = append(keys, domain.CitationCIT, domain.CitationDevelopmentLevy, domain.CitationMinimumTax)
	}
	if inputs.CapitalGains.GreaterThan(decimal.Zero) {
		keys = append(keys, domain.CitationCGT)
	}
	if inputs.WithholdingCredits.GreaterThan(decimal.Zero) {
		keys = append(keys, domain.CitationWHTCredit)
	}

	result.Citations = make([]domain.Citation, 0, len(keys))
	for _, key := range keys {
		result.Citations = append(result.Citations, e.Statutes.CitationFor(key))
	}
}

// validateInputs rejects negative amounts before any sub-computation runs
func validateInputs(inputs domain.CalculatorInputs) error {
	checks := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"gross income", inputs.GrossIncome},
		{"deductions", inputs.Deductions},
		{"capital gains", inputs.CapitalGains},
		{"withholding credits", inputs.WithholdingCredits},
		{"profit before tax", inputs.ProfitBeforeTax},
	}
	for _, c := range checks {
		if c.amount.IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", c.name, c.amount)
		}
	}
	return nil
}
