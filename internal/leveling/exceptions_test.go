package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptions_Merge(t *testing.T) {
	extra := Exceptions{
		Unparsable: []string{"Ranks with Feral Flare"},
		Removals:   []string{"(doubled against monsters)"},
		Literals:   []string{"Feast stacks"},
	}

	merged := DefaultExceptions().Merge(extra)
	assert.Contains(t, merged.Unparsable, "Ranks with Feral Flare")
	assert.Contains(t, merged.Unparsable, "Pounce scales with  Aspect of the Cougar's rank")
	assert.Contains(t, merged.Removals, "(doubled against monsters)")
	assert.Contains(t, merged.Literals, "Feast stacks")
	assert.Len(t, merged.Fixups, 1)

	// the receiver is not modified
	assert.NotContains(t, DefaultExceptions().Literals, "Feast stacks")
}

func TestExceptions_Applied(t *testing.T) {
	p := New(WithExceptions(DefaultExceptions().Merge(Exceptions{
		Unparsable: []string{"Ranks with Feral Flare"},
		Removals:   []string{"(doubled against monsters)"},
		Literals:   []string{"Feast stacks"},
	})))

	_, err := p.ParseLeveling("Ranks with Feral Flare", W)
	require.ErrorIs(t, err, ErrUnparsableSegment)

	attrs, err := p.ParseLeveling("Heal: 20 / 30 / 40 / 50 / 60 (doubled against monsters)", W)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, Nums(20, 30, 40, 50, 60), attrs[0].Modifiers[0].Values)

	attrs, err = p.ParseLeveling("True Damage: 100 (+ Feast stacks)", R)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, []Value{{Text: "Feast stacks"}, {Text: "Feast stacks"}, {Text: "Feast stacks"}}, attrs[0].Modifiers[0].Values)
}

func TestExceptions_StripOnlyWhenPresent(t *testing.T) {
	e := DefaultExceptions()
	assert.Equal(t, " Damage: 10 ", e.strip(" Damage: 10 "))
	assert.Equal(t, "Damage: 10", e.strip("Damage: 10 (increased by 3% per 1% of health lost in the past 4 seconds)"))
}

func TestExceptions_FixLeavesOtherSegmentations(t *testing.T) {
	segs := []Segment{splitSpan("Damage: 10")}
	assert.Equal(t, segs, DefaultExceptions().fix(segs))
}
