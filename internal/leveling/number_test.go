package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"empty", "", nil},
		{"no digits", "bonus AD", nil},
		{"integer", "60", []float64{60}},
		{"decimal", "22.5", []float64{22.5}},
		{"trailing point", "10. seconds", []float64{10}},
		{"embedded", "0.5% per 100 AP", []float64{0.5, 100}},
		{"second point starts new literal", "1.2.3", []float64{1.2, 3}},
		{"sign is not part of literal", "-5", []float64{5}},
		{"list", "10 / 20 / 30", []float64{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nums := findNumbers(tt.input)
			var got []float64
			for _, n := range nums {
				got = append(got, n.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindNumbers_Positions(t *testing.T) {
	nums := findNumbers("ab 12.5cd")
	require.Len(t, nums, 1)
	assert.Equal(t, 3, nums[0].start)
	assert.Equal(t, 7, nums[0].end)
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     float64
		wantUnit string
		wantErr  error
	}{
		{"plain", "60", 60, "", nil},
		{"unit kept verbatim", "60% AP", 60, "% AP", nil},
		{"unit with leading space", "5 seconds", 5, " seconds", nil},
		{"leading whitespace ignored", "  4.5%", 4.5, "%", nil},
		{"number in the middle", "per 100 AP", 0, "", ErrMalformedValue},
		{"no number", "stacks", 0, "", ErrMalformedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unit, err := leadingNumber(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}
