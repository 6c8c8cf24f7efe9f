package output

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ngtax/nta-calculator/internal/domain"
)

// Assessment is the audit-trail record a formatter renders: the engine's
// result plus a reference ID, the statute year it was computed under and
// the generation timestamp.
type Assessment struct {
	ID          uuid.UUID         `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	TaxYear     int               `json:"tax_year"`
	Result      *domain.TaxResult `json:"result"`
}

// NewAssessment wraps a computed result in a fresh assessment record
func NewAssessment(taxYear int, result *domain.TaxResult) *Assessment {
	return &Assessment{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		TaxYear:     taxYear,
		Result:      result,
	}
}

// WriteFormatted runs a formatter and writes its output to the named file.
// An empty filename writes to stdout.
func WriteFormatted(f Formatter, assessment *Assessment, filename string) error {
	data, err := f.Format(assessment)
	if err != nil {
		return fmt.Errorf("formatting %s output failed: %w", f.Name(), err)
	}
	if filename == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing %s failed: %w", filename, err)
	}
	return nil
}
