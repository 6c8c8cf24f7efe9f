package output

import (
	"bytes"
	"fmt"

	"github.com/ngtax/nta-calculator/internal/domain"
)

// ConsoleFormatter renders an assessment as a human-readable ledger.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(assessment *Assessment) ([]byte, error) {
	var buf bytes.Buffer
	r := assessment.Result

	fmt.Fprintf(&buf, "TAX ASSESSMENT %s (%d)\n", assessment.ID, assessment.TaxYear)
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintf(&buf, "Category: %s\n\n", r.Category)

	switch {
	case r.Individual != nil:
		writeIndividual(&buf, r.Individual)
	case r.Company != nil:
		writeCompany(&buf, r.Company)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Gross Considered: %s\n", FormatCurrency(r.GrossConsidered))
	fmt.Fprintf(&buf, "Total Liability:  %s\n", FormatCurrency(r.TotalLiability))
	fmt.Fprintf(&buf, "Net Payable:      %s\n", FormatCurrency(r.NetPayable))
	fmt.Fprintf(&buf, "Net Income:       %s\n", FormatCurrency(r.NetIncome))

	if len(r.Citations) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Statutory basis:")
		for _, cit := range r.Citations {
			fmt.Fprintf(&buf, "  %s — %s\n", cit.Code, cit.Description)
		}
	}

	return buf.Bytes(), nil
}

func writeIndividual(buf *bytes.Buffer, ind *domain.IndividualBreakdown) {
	fmt.Fprintf(buf, "Taxable Base: %s\n", FormatCurrency(ind.TaxableBase))
	fmt.Fprintln(buf, "Income Tax Breakdown:")
	for _, item := range ind.IncomeTaxBreakdown {
		fmt.Fprintf(buf, "  %-28s %6s on %s = %s\n",
			item.Label,
			FormatRate(item.Rate),
			FormatCurrency(item.TaxableAmountInBand),
			FormatCurrency(item.TaxForBand),
		)
	}
	fmt.Fprintf(buf, "Income Tax:        %s\n", FormatCurrency(ind.IncomeTax))
	fmt.Fprintf(buf, "Capital Gains Tax: %s\n", FormatCurrency(ind.CapitalGainsTax))
}

func writeCompany(buf *bytes.Buffer, co *domain.CompanyBreakdown) {
	fmt.Fprintf(buf, "Company Income Tax: %s\n", FormatCurrency(co.IncomeTaxPayable))
	fmt.Fprintf(buf, "Development Levy:   %s\n", FormatCurrency(co.DevelopmentLevy))
	fmt.Fprintf(buf, "Minimum Tax Top-Up: %s (floor %s)\n",
		FormatCurrency(co.MinimumTaxTopUp), FormatCurrency(co.MinimumTaxFloor))
	fmt.Fprintf(buf, "Capital Gains Tax:  %s\n", FormatCurrency(co.CapitalGainsTax))
}
