package leveling

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestScaling(t *testing.T) {
	p := New()

	tests := []struct {
		name  string
		input string
		want  AttributeModifier
	}{
		{
			name:  "single ratio repeats over ranks",
			input: "(+ 60% AP)",
			want:  AttributeModifier{Sign: Plus, Values: Nums(60, 60, 60, 60, 60), Units: repeat("% AP", 5)},
		},
		{
			name:  "per rank ratio",
			input: "(+ 40 / 50 / 60 / 70 / 80% bonus AD)",
			want: AttributeModifier{
				Sign:   Plus,
				Values: Nums(40, 50, 60, 70, 80),
				Units:  []string{"", "", "", "", "% bonus AD"},
			},
		},
		{
			name:  "negative ratio",
			input: "(- 10% armor)",
			want:  AttributeModifier{Sign: Minus, Values: Nums(10, 10, 10, 10, 10), Units: repeat("% armor", 5)},
		},
		{
			name:  "trailing numbers stay in the unit",
			input: "(+ 0.5% per 100 AP)",
			want:  AttributeModifier{Sign: Plus, Values: Nums(0.5, 0.5, 0.5, 0.5, 0.5), Units: repeat("% per 100 AP", 5)},
		},
		{
			name:  "bracketed ratio",
			input: "(+[ 1% per 35 ][ 2.86% per 100 ]bonus AD)",
			want: AttributeModifier{
				Sign:   Plus,
				Values: Nums(1, 1, 1, 1, 1),
				Units:  repeat("% per 35 ][ 2.86% per 100 ]bonus AD", 5),
			},
		},
		{
			name:  "literal word value",
			input: "(+ Siphoning Strike stacks)",
			want: AttributeModifier{
				Sign: Plus,
				Values: []Value{
					{Text: "Siphoning Strike stacks"}, {Text: "Siphoning Strike stacks"}, {Text: "Siphoning Strike stacks"},
					{Text: "Siphoning Strike stacks"}, {Text: "Siphoning Strike stacks"},
				},
				Units: repeat("", 5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.scaling(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scaling(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestScaling_Errors(t *testing.T) {
	p := New()

	tests := []struct {
		name  string
		input string
	}{
		{"no sign", "(60% AP)"},
		{"empty", "()"},
		{"word without number", "(+ bonus AD)"},
		{"number not leading", "(+ per 100 AP)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.scaling(tt.input)
			require.ErrorIs(t, err, ErrMalformedValue)
		})
	}
}

func TestScaling_Levels(t *testing.T) {
	p := New(WithLevels(3))

	got, err := p.scaling("(+ 25% AP)")
	require.NoError(t, err)
	assert.Equal(t, Nums(25, 25, 25), got.Values)
}

func TestFlat(t *testing.T) {
	p := New()

	tests := []struct {
		name  string
		input string
		want  AttributeModifier
	}{
		{
			name:  "single value",
			input: "60",
			want:  AttributeModifier{Sign: Plus, Values: Nums(60, 60, 60, 60, 60), Units: repeat("", 5)},
		},
		{
			name:  "five ranks",
			input: "10 / 20 / 30 / 40 / 50",
			want:  AttributeModifier{Sign: Plus, Values: Nums(10, 20, 30, 40, 50), Units: repeat("", 5)},
		},
		{
			name:  "unit on last rank applies to all",
			input: "50% / 60% / 70",
			want:  AttributeModifier{Sign: Plus, Values: Nums(50, 60, 70), Units: repeat("%", 3)},
		},
		{
			name:  "parenthesized",
			input: "(12 / 11 / 10 / 9 / 8)",
			want:  AttributeModifier{Sign: Plus, Values: Nums(12, 11, 10, 9, 8), Units: repeat("", 5)},
		},
		{
			name:  "decimal values",
			input: "16 / 22.5 / 29",
			want:  AttributeModifier{Sign: Plus, Values: Nums(16, 22.5, 29), Units: repeat("", 3)},
		},
		{
			name:  "single value with unit",
			input: "1.5 seconds",
			want:  AttributeModifier{Sign: Plus, Values: Nums(1.5, 1.5, 1.5, 1.5, 1.5), Units: repeat(" seconds", 5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.flat(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("flat(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestFlat_Errors(t *testing.T) {
	p := New()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"two numbers in one rank", "10 per 100", ErrAmbiguousValue},
		{"no number", "varies", ErrMalformedValue},
		{"number not leading", "up to 40", ErrMalformedValue},
		{"mixed units", "10% / 20 seconds / 30", ErrInconsistentUnits},
		{"interpolation needs two bounds", "5 (based on level)", ErrAmbiguousValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.flat(tt.input)
			require.ErrorIs(t, err, tt.wantErr)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.NotEmpty(t, pe.Fragment)
		})
	}
}

func TestFlat_Interpolation(t *testing.T) {
	p := New()

	t.Run("by level is linear over 18 levels", func(t *testing.T) {
		got, err := p.flat("0 – 17 (based on level)")
		require.NoError(t, err)

		want := make([]Value, 18)
		for i := range want {
			want[i] = Num(float64(i))
		}
		assert.Equal(t, Plus, got.Sign)
		assert.Equal(t, want, got.Values)
		assert.Equal(t, repeat("by level", 18), got.Units)
	})

	t.Run("by cast", func(t *testing.T) {
		got, err := p.flat("20 – 54 (based on casts)")
		require.NoError(t, err)
		require.Len(t, got.Values, 18)
		assert.Equal(t, Num(20), got.Values[0])
		assert.Equal(t, Num(22), got.Values[1])
		assert.InDelta(t, 54, got.Values[17].Num, 1e-9)
		assert.Equal(t, repeat("by cast", 18), got.Units)
	})

	t.Run("decreasing range", func(t *testing.T) {
		got, err := p.flat("12 – 8 (based on level)")
		require.NoError(t, err)
		assert.InDelta(t, 12, got.Values[0].Num, 1e-9)
		assert.InDelta(t, 8, got.Values[17].Num, 1e-9)
		assert.Greater(t, got.Values[0].Num, got.Values[1].Num)
	})
}

func TestUnifyUnits(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		want   []string
		wantOK bool
	}{
		{"all empty", []string{"", ""}, []string{"", ""}, true},
		{"all same", []string{"%", "%"}, []string{"%", "%"}, true},
		{"some empty", []string{"%", "%", ""}, []string{"%", "%", "%"}, true},
		{"conflict", []string{"%", " seconds"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unifyUnits(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
