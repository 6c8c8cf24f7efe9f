package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestDefaultStatutesAreValid verifies the embedded NTA 2025 table
// passes the same validation applied to loaded files.
func TestDefaultStatutesAreValid(t *testing.T) {
	parser := NewStatuteParser()
	statutes := DefaultStatutes()

	require.NoError(t, parser.ValidateStatutes(statutes))
	assert.Equal(t, 2025, statutes.TaxYear)
	assert.Len(t, statutes.Bands, 6)
	assert.True(t, statutes.Bands[len(statutes.Bands)-1].Unbounded())
}

// TestValidateStatutesRejectsMalformedTables verifies the fatal
// configuration checks: a malformed schedule must never be served.
func TestValidateStatutesRejectsMalformedTables(t *testing.T) {
	parser := NewStatuteParser()

	tests := []struct {
		name    string
		mutate  func(*domain.Statutes)
		wantErr string
	}{
		{
			name:    "No bands",
			mutate:  func(s *domain.Statutes) { s.Bands = nil },
			wantErr: "no rate bands",
		},
		{
			name: "No terminal unbounded band",
			mutate: func(s *domain.Statutes) {
				bound := decimal.NewFromInt(100_000_000)
				s.Bands[len(s.Bands)-1].UpperBound = &bound
			},
			wantErr: "exactly one unbounded terminal band",
		},
		{
			name: "Unbounded band before the end",
			mutate: func(s *domain.Statutes) {
				s.Bands[2].UpperBound = nil
			},
			wantErr: "unbounded band must be the last band",
		},
		{
			name: "Descending bounds",
			mutate: func(s *domain.Statutes) {
				bound := decimal.NewFromInt(500_000)
				s.Bands[1].UpperBound = &bound
			},
			wantErr: "must exceed previous ceiling",
		},
		{
			name: "Rate above one",
			mutate: func(s *domain.Statutes) {
				s.Bands[1].Rate = decimal.NewFromFloat(1.5)
			},
			wantErr: "rate must be between 0 and 1",
		},
		{
			name: "Negative corporate rate",
			mutate: func(s *domain.Statutes) {
				s.Corporate.DevelopmentLevyRate = decimal.NewFromFloat(-0.04)
			},
			wantErr: "development levy rate must be between 0 and 1",
		},
		{
			name: "Dangling band citation",
			mutate: func(s *domain.Statutes) {
				s.Bands[0].Citation = "repealed"
			},
			wantErr: "not found in citation registry",
		},
		{
			name: "Missing registry key",
			mutate: func(s *domain.Statutes) {
				delete(s.Citations, domain.CitationWHTCredit)
			},
			wantErr: "missing required key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statutes := DefaultStatutes()
			tt.mutate(statutes)

			err := parser.ValidateStatutes(statutes)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoadFromFile round-trips the default table through YAML and the
// file loader.
func TestLoadFromFile(t *testing.T) {
	parser := NewStatuteParser()

	data, err := yaml.Marshal(DefaultStatutes())
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "statutes.yaml")
	require.NoError(t, os.WriteFile(filename, data, 0644))

	loaded, err := parser.LoadFromFile(filename)
	require.NoError(t, err)

	original := DefaultStatutes()
	assert.Equal(t, original.TaxYear, loaded.TaxYear)
	require.Len(t, loaded.Bands, len(original.Bands))
	for i, band := range loaded.Bands {
		assert.True(t, band.Rate.Equal(original.Bands[i].Rate), "band %d rate", i)
		if original.Bands[i].Unbounded() {
			assert.True(t, band.Unbounded(), "band %d should be unbounded", i)
		} else {
			require.False(t, band.Unbounded(), "band %d should be bounded", i)
			assert.True(t, band.UpperBound.Equal(*original.Bands[i].UpperBound), "band %d bound", i)
		}
	}
	assert.True(t, loaded.Corporate.MinimumEffectiveRate.Equal(original.Corporate.MinimumEffectiveRate))
	assert.Equal(t, original.Citations[domain.CitationPIT].Code, loaded.Citations[domain.CitationPIT].Code)
}

// TestLoadFromFileErrors verifies loader failure modes.
func TestLoadFromFileErrors(t *testing.T) {
	parser := NewStatuteParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	filename := filepath.Join(t.TempDir(), "garbage.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("bands: {not: [a, table"), 0644))
	_, err = parser.LoadFromFile(filename)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}
