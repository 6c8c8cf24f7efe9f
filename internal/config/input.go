package config

import (
	"fmt"
	"os"

	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// StatuteParser handles loading and validation of statutory rate tables.
type StatuteParser struct{}

// NewStatuteParser creates a new statute parser
func NewStatuteParser() *StatuteParser {
	return &StatuteParser{}
}

// LoadFromFile loads a statutory table from a YAML file. A table that
// fails validation is fatal: a malformed schedule produces silently wrong
// tax amounts rather than a visible crash, so nothing may be served from it.
func (sp *StatuteParser) LoadFromFile(filename string) (*domain.Statutes, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var statutes domain.Statutes
	if err := yaml.Unmarshal(data, &statutes); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := sp.ValidateStatutes(&statutes); err != nil {
		return nil, fmt.Errorf("statute table validation failed: %w", err)
	}

	return &statutes, nil
}

// ValidateStatutes checks that the table is well formed: bands strictly
// ascending with exactly one terminal unbounded band, all rates within
// [0,1], and every citation code resolvable.
func (sp *StatuteParser) ValidateStatutes(statutes *domain.Statutes) error {
	if len(statutes.Bands) == 0 {
		return fmt.Errorf("no rate bands provided")
	}

	one := decimal.NewFromInt(1)
	prev := decimal.Zero
	unbounded := 0
	for i, band := range statutes.Bands {
		if band.Rate.IsNegative() || band.Rate.GreaterThan(one) {
			return fmt.Errorf("band %d: rate must be between 0 and 1", i)
		}
		if band.Citation == "" {
			return fmt.Errorf("band %d: citation code is required", i)
		}
		if _, ok := statutes.Citations[band.Citation]; !ok {
			return fmt.Errorf("band %d: citation code %q not found in citation registry", i, band.Citation)
		}
		if band.Unbounded() {
			unbounded++
			if i != len(statutes.Bands)-1 {
				return fmt.Errorf("band %d: unbounded band must be the last band", i)
			}
			continue
		}
		if band.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("band %d: upper bound %s must exceed previous ceiling %s", i, band.UpperBound, prev)
		}
		prev = *band.UpperBound
	}
	if unbounded != 1 {
		return fmt.Errorf("rate table must have exactly one unbounded terminal band, found %d", unbounded)
	}

	if err := sp.validateCorporateRates(&statutes.Corporate); err != nil {
		return fmt.Errorf("corporate rates validation failed: %w", err)
	}

	for _, key := range []string{
		domain.CitationPIT,
		domain.CitationCIT,
		domain.CitationCGT,
		domain.CitationDevelopmentLevy,
		domain.CitationMinimumTax,
		domain.CitationWHTCredit,
	} {
		c, ok := statutes.Citations[key]
		if !ok {
			return fmt.Errorf("citation registry is missing required key %q", key)
		}
		if c.Code == "" {
			return fmt.Errorf("citation %q has an empty statutory code", key)
		}
	}

	return nil
}

// validateCorporateRates checks the flat-rate corporate constants
func (sp *StatuteParser) validateCorporateRates(rates *domain.CorporateRates) error {
	one := decimal.NewFromInt(1)
	checks := []struct {
		name string
		rate decimal.Decimal
	}{
		{"standard CIT rate", rates.StandardCITRate},
		{"development levy rate", rates.DevelopmentLevyRate},
		{"minimum effective rate", rates.MinimumEffectiveRate},
		{"company CGT rate", rates.CompanyCGTRate},
	}
	for _, c := range checks {
		if c.rate.IsNegative() || c.rate.GreaterThan(one) {
			return fmt.Errorf("%s must be between 0 and 1", c.name)
		}
	}
	return nil
}

// DefaultStatutes returns the Nigeria Tax Act 2025 schedule: the
// progressive personal income tax bands of the Fourth Schedule and the
// corporate rate constants. Capital gains of individuals are taxed by
// re-running this same table from zero.
func DefaultStatutes() *domain.Statutes {
	bound := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	return &domain.Statutes{
		TaxYear: 2025,
		Bands: []domain.RateBand{
			{UpperBound: bound(800_000), Rate: decimal.Zero, Citation: domain.CitationPIT},
			{UpperBound: bound(3_000_000), Rate: decimal.NewFromFloat(0.15), Citation: domain.CitationPIT},
			{UpperBound: bound(12_000_000), Rate: decimal.NewFromFloat(0.18), Citation: domain.CitationPIT},
			{UpperBound: bound(25_000_000), Rate: decimal.NewFromFloat(0.21), Citation: domain.CitationPIT},
			{UpperBound: bound(50_000_000), Rate: decimal.NewFromFloat(0.23), Citation: domain.CitationPIT},
			{UpperBound: nil, Rate: decimal.NewFromFloat(0.25), Citation: domain.CitationPIT},
		},
		Corporate: domain.CorporateRates{
			StandardCITRate:      decimal.NewFromFloat(0.30),
			DevelopmentLevyRate:  decimal.NewFromFloat(0.04),
			MinimumEffectiveRate: decimal.NewFromFloat(0.15),
			CompanyCGTRate:       decimal.NewFromFloat(0.30),
		},
		Citations: map[string]domain.Citation{
			domain.CitationPIT: {
				Code:        "NTA 2025 s.56",
				Description: "Establishes progressive Personal Income Tax rates on chargeable income of individuals.",
			},
			domain.CitationCIT: {
				Code:        "NTA 2025 s.57",
				Description: "Imposes Company Income Tax at 30% on total profits; small companies are charged at 0%.",
			},
			domain.CitationCGT: {
				Code:        "NTA 2025 s.34",
				Description: "Charges tax on chargeable gains arising from the disposal of assets.",
			},
			domain.CitationDevelopmentLevy: {
				Code:        "NTA 2025 s.59",
				Description: "Imposes a Development Levy of 4% on the assessable profits of companies.",
			},
			domain.CitationMinimumTax: {
				Code:        "NTA 2025 s.58",
				Description: "Requires a top-up where a company's effective tax rate falls below the 15% minimum.",
			},
			domain.CitationWHTCredit: {
				Code:        "NTA 2025 s.78",
				Description: "Allows tax withheld at source as a credit against final tax liability.",
			},
		},
	}
}
