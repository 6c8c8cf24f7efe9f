package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter exports the assessment as one row per line item.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(assessment *Assessment) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Item", "Rate", "TaxableAmount", "Tax", "Citation"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	r := assessment.Result
	switch {
	case r.Individual != nil:
		for _, item := range r.Individual.IncomeTaxBreakdown {
			row := []string{
				item.Label,
				item.Rate.String(),
				item.TaxableAmountInBand.StringFixed(2),
				item.TaxForBand.StringFixed(2),
				item.Citation.Code,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		if err := w.Write([]string{"Capital Gains Tax", "", "", r.Individual.CapitalGainsTax.StringFixed(2), ""}); err != nil {
			return nil, err
		}
	case r.Company != nil:
		rows := [][]string{
			{"Company Income Tax", "", "", r.Company.IncomeTaxPayable.StringFixed(2), ""},
			{"Development Levy", "", "", r.Company.DevelopmentLevy.StringFixed(2), ""},
			{"Minimum Tax Top-Up", "", "", r.Company.MinimumTaxTopUp.StringFixed(2), ""},
			{"Capital Gains Tax", "", "", r.Company.CapitalGainsTax.StringFixed(2), ""},
		}
		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	summary := [][]string{
		{"Total Liability", "", "", r.TotalLiability.StringFixed(2), ""},
		{"Net Payable", "", "", r.NetPayable.StringFixed(2), ""},
		{"Net Income", "", "", r.NetIncome.StringFixed(2), ""},
	}
	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
