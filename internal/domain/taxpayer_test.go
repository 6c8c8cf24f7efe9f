package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCategory verifies role resolution, including the Advisor
// presentation alias that never reaches the engine as its own branch.
func TestParseCategory(t *testing.T) {
	tests := []struct {
		role     string
		expected TaxpayerCategory
		wantErr  bool
	}{
		{"Individual", CategoryIndividual, false},
		{"Advisor", CategoryIndividual, false},
		{"Company", CategoryCompany, false},
		{"company", "", true}, // labels are case-sensitive
		{"Partnership", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			cat, err := ParseCategory(tt.role)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown taxpayer category")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cat)
		})
	}
}
