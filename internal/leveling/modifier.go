package leveling

import (
	"strings"
)

const (
	rankSeparator = " / "

	// Level-based values are spread over champion levels 1..18.
	interpolationSteps = 18
)

// interpolations are the markers of values that grow continuously instead
// of per rank, with the unit recorded for them.
var interpolations = []struct {
	marker, unit string
}{
	{"(based on level)", "by level"},
	{"(based on casts)", "by cast"},
}

func unwrapParens(s string) string {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// perRank splits s into one fragment per rank. Text without a separator
// applies to every rank.
func (p *Parser) perRank(s string) []string {
	if strings.Contains(s, rankSeparator) {
		return strings.Split(s, rankSeparator)
	}
	parts := make([]string, p.levels)
	for i := range parts {
		parts[i] = s
	}
	return parts
}

// scaling builds a modifier from a ratio such as "(+ 60% AP)" or
// "(+ 40 / 50 / 60% bonus AD)".
func (p *Parser) scaling(fragment string) (AttributeModifier, error) {
	s := unwrapParens(strings.TrimSpace(fragment))
	if s == "" {
		return AttributeModifier{}, failf(ErrMalformedValue, fragment)
	}
	sign := Sign(s[:1])
	if sign != Plus && sign != Minus {
		return AttributeModifier{}, failf(ErrMalformedValue, fragment)
	}

	parts := p.perRank(strings.TrimSpace(s[1:]))
	m := AttributeModifier{
		Sign:   sign,
		Values: make([]Value, 0, len(parts)),
		Units:  make([]string, 0, len(parts)),
	}
	for _, part := range parts {
		if p.exc.isLiteral(part) {
			m.Values = append(m.Values, Value{Text: part})
			m.Units = append(m.Units, "")
			continue
		}
		// A ratio may be quoted twice in brackets, "[ 1% per 35 ][ 2.86% per 100 ]bonus AD";
		// the first figure is the one kept.
		if rest, ok := strings.CutPrefix(part, "[ "); ok {
			part = rest
		}
		// Trailing numbers are part of the unit: "0.5% per 100 AP".
		v, unit, err := leadingNumber(part)
		if err != nil {
			return AttributeModifier{}, err
		}
		m.Values = append(m.Values, Num(v))
		m.Units = append(m.Units, unit)
	}
	return m, nil
}

// flat builds a modifier from the base value written after a label.
func (p *Parser) flat(fragment string) (AttributeModifier, error) {
	for _, ip := range interpolations {
		if strings.Contains(fragment, ip.marker) {
			return interpolate(strings.TrimSpace(strings.ReplaceAll(fragment, ip.marker, "")), ip.unit)
		}
	}

	parts := p.perRank(unwrapParens(fragment))
	m := AttributeModifier{
		Sign:   Plus,
		Values: make([]Value, 0, len(parts)),
		Units:  make([]string, 0, len(parts)),
	}
	for _, part := range parts {
		if n := len(findNumbers(part)); n > 1 {
			return AttributeModifier{}, failf(ErrAmbiguousValue, part)
		}
		v, unit, err := leadingNumber(part)
		if err != nil {
			return AttributeModifier{}, err
		}
		m.Values = append(m.Values, Num(v))
		m.Units = append(m.Units, unit)
	}

	units, ok := unifyUnits(m.Units)
	if !ok {
		return AttributeModifier{}, failf(ErrInconsistentUnits, fragment)
	}
	m.Units = units
	return m, nil
}

// interpolate spreads a "min – max" range linearly over every champion level.
func interpolate(s, unit string) (AttributeModifier, error) {
	nums := findNumbers(s)
	if len(nums) != 2 {
		return AttributeModifier{}, failf(ErrAmbiguousValue, s)
	}
	lo, hi := nums[0].value, nums[1].value
	step := (hi - lo) / (interpolationSteps - 1)

	m := AttributeModifier{
		Sign:   Plus,
		Values: make([]Value, interpolationSteps),
		Units:  make([]string, interpolationSteps),
	}
	for i := range interpolationSteps {
		m.Values[i] = Num(lo + float64(i)*step)
		m.Units[i] = unit
	}
	return m, nil
}

// unifyUnits applies the single unit written on some ranks to all of them.
// "50% / 60% / 70" becomes three "%" units. Two different units fail.
func unifyUnits(units []string) ([]string, bool) {
	var unit string
	for _, u := range units {
		if u == "" {
			continue
		}
		if unit != "" && u != unit {
			return nil, false
		}
		unit = u
	}
	if unit == "" {
		return units, true
	}
	out := make([]string, len(units))
	for i := range out {
		out[i] = unit
	}
	return out, true
}
