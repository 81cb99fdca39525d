package leveling

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttribute_JSONShape(t *testing.T) {
	attr := Attribute{
		Name: "Bonus Physical Damage",
		Modifiers: []AttributeModifier{
			{Sign: Plus, Values: []Value{Num(30), Num(22.5), {Text: "Siphoning Strike stacks"}}, Units: []string{"", "", ""}},
			{Sign: Minus, Values: Nums(10, 10, 10), Units: repeat("% AP", 3)},
		},
	}

	data, err := json.Marshal(attr)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"attribute": "Bonus Physical Damage",
		"modifiers": [
			{"sign": "+", "values": [30, 22.5, "Siphoning Strike stacks"], "units": ["", "", ""]},
			{"sign": "-", "values": [10, 10, 10], "units": ["% AP", "% AP", "% AP"]}
		]
	}`, string(data))

	var back Attribute
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, attr.Equal(back))
}

func TestValue_UnmarshalJSON_Error(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{}`), &v))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "22.5", Num(22.5).String())
	assert.Equal(t, "60", Num(60).String())
	assert.Equal(t, "stacks", Value{Text: "stacks"}.String())
}

func TestAttribute_Equal(t *testing.T) {
	a := Attribute{Name: "Damage", Modifiers: []AttributeModifier{{Sign: Plus, Values: Nums(1), Units: []string{""}}}}

	tests := []struct {
		name  string
		other Attribute
		want  bool
	}{
		{"same", Attribute{Name: "Damage", Modifiers: []AttributeModifier{{Sign: Plus, Values: Nums(1), Units: []string{""}}}}, true},
		{"other name", Attribute{Name: "Heal", Modifiers: a.Modifiers}, false},
		{"other sign", Attribute{Name: "Damage", Modifiers: []AttributeModifier{{Sign: Minus, Values: Nums(1), Units: []string{""}}}}, false},
		{"other unit", Attribute{Name: "Damage", Modifiers: []AttributeModifier{{Sign: Plus, Values: Nums(1), Units: []string{"%"}}}}, false},
		{"no modifiers", Attribute{Name: "Damage"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Equal(tt.other))
		})
	}
}

func TestAttributeModifier_Text(t *testing.T) {
	m := AttributeModifier{Sign: Plus, Values: Nums(50, 60, 70), Units: repeat("%", 3)}
	assert.Equal(t, "50% / 60% / 70%", m.Text())
	assert.Equal(t, 3, m.Ranks())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"P", Passive, false},
		{"I", Passive, false},
		{"q", Q, false},
		{" W ", W, false},
		{"E", E, false},
		{"R", R, false},
		{"X", Unknown, true},
		{"", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "R", R.String())
	assert.Equal(t, "P", Passive.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.False(t, Passive.Ranked())
	assert.False(t, Unknown.Ranked())
	assert.True(t, Q.Ranked())
	assert.True(t, R.Ranked())
}
