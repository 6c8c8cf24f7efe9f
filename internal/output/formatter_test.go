package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndividualAssessment() *Assessment {
	return NewAssessment(2025, &domain.TaxResult{
		Category: domain.CategoryIndividual,
		Individual: &domain.IndividualBreakdown{
			TaxableBase: decimal.NewFromInt(1_500_000),
			IncomeTax:   decimal.NewFromInt(105_000),
			IncomeTaxBreakdown: []domain.BracketLineItem{
				{
					Label:               "₦1 – ₦800,000",
					Rate:                decimal.Zero,
					TaxableAmountInBand: decimal.NewFromInt(800_000),
					TaxForBand:          decimal.Zero,
					Citation:            domain.Citation{Code: "NTA 2025 s.56", Description: "Progressive PIT rates."},
				},
				{
					Label:               "₦800,001 – ₦3,000,000",
					Rate:                decimal.NewFromFloat(0.15),
					TaxableAmountInBand: decimal.NewFromInt(700_000),
					TaxForBand:          decimal.NewFromInt(105_000),
					Citation:            domain.Citation{Code: "NTA 2025 s.56", Description: "Progressive PIT rates."},
				},
			},
			CapitalGainsTax: decimal.Zero,
		},
		TotalLiability:  decimal.NewFromInt(105_000),
		NetPayable:      decimal.NewFromInt(55_000),
		GrossConsidered: decimal.NewFromInt(2_000_000),
		NetIncome:       decimal.NewFromInt(1_895_000),
		Citations: []domain.Citation{
			{Code: "NTA 2025 s.56", Description: "Progressive PIT rates."},
			{Code: "NTA 2025 s.78", Description: "Withholding credits."},
		},
	})
}

func sampleCompanyAssessment() *Assessment {
	return NewAssessment(2025, &domain.TaxResult{
		Category: domain.CategoryCompany,
		Company: &domain.CompanyBreakdown{
			IncomeTaxPayable:   decimal.Zero,
			DevelopmentLevy:    decimal.NewFromInt(400_000),
			CombinedCurrentTax: decimal.NewFromInt(400_000),
			MinimumTaxFloor:    decimal.NewFromInt(1_500_000),
			MinimumTaxTopUp:    decimal.NewFromInt(1_100_000),
			CapitalGainsTax:    decimal.Zero,
		},
		TotalLiability:  decimal.NewFromInt(1_500_000),
		NetPayable:      decimal.NewFromInt(1_500_000),
		GrossConsidered: decimal.NewFromInt(10_000_000),
		NetIncome:       decimal.NewFromInt(8_500_000),
	})
}

// TestGetFormatterByName verifies registry lookups and aliases.
func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"CONSOLE", "console"},
		{"ledger", "console"},
		{"txt", "console"},
		{"json", "json"},
		{"json-pretty", "json"},
		{"csv", "csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "formatter %q not found", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}

	assert.Nil(t, GetFormatterByName("pdf"))
}

// TestConsoleFormatter verifies the ledger rendering for both variants.
func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleIndividualAssessment())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "Category: Individual")
	assert.Contains(t, text, "₦1 – ₦800,000")
	assert.Contains(t, text, "₦800,001 – ₦3,000,000")
	assert.Contains(t, text, "Total Liability:  ₦105,000.00")
	assert.Contains(t, text, "Net Payable:      ₦55,000.00")
	assert.Contains(t, text, "NTA 2025 s.78")

	data, err = ConsoleFormatter{}.Format(sampleCompanyAssessment())
	require.NoError(t, err)
	text = string(data)

	assert.Contains(t, text, "Category: Company")
	assert.Contains(t, text, "Development Levy:   ₦400,000.00")
	assert.Contains(t, text, "Minimum Tax Top-Up: ₦1,100,000.00")
	assert.Contains(t, text, "floor ₦1,500,000.00")
}

// TestJSONFormatter verifies the JSON output round-trips.
func TestJSONFormatter(t *testing.T) {
	assessment := sampleIndividualAssessment()
	data, err := JSONFormatter{}.Format(assessment)
	require.NoError(t, err)

	var decoded Assessment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, assessment.ID, decoded.ID)
	assert.Equal(t, domain.CategoryIndividual, decoded.Result.Category)
	require.NotNil(t, decoded.Result.Individual)
	assert.True(t, decoded.Result.TotalLiability.Equal(decimal.NewFromInt(105_000)))
	assert.Len(t, decoded.Result.Individual.IncomeTaxBreakdown, 2)
}

// TestCSVFormatter verifies one row per line item plus the summary rows.
func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleIndividualAssessment())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header + 2 bracket rows + CGT + 3 summary rows.
	require.Len(t, records, 7)
	assert.Equal(t, []string{"Item", "Rate", "TaxableAmount", "Tax", "Citation"}, records[0])
	assert.Equal(t, "₦1 – ₦800,000", records[1][0])
	assert.Equal(t, "105000.00", records[2][3])
	assert.Equal(t, "Total Liability", records[4][0])
	assert.Equal(t, "55000.00", records[5][3])
}
