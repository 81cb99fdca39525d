package leveling

import (
	"regexp"
	"strings"
)

var (
	// scalingPattern matches ratios like "(+ 60% AP)". Non-greedy so that two
	// ratios in a row stay apart.
	scalingPattern = regexp.MustCompile(`\([+-].+?\)`)

	// flatPattern matches the base value written after a sub-label.
	flatPattern = regexp.MustCompile(`: (.+)`)
)

// ParseAttribute parses the text owned by one label. body may still start
// with the label itself ("Damage: 10 / 20 / 30") or be the bare value list.
func (p *Parser) ParseAttribute(name, body string) (Attribute, error) {
	// Ratios go first: their numbers would otherwise confuse the flat values.
	scalings := scalingPattern.FindAllString(body, -1)
	rest := body
	for _, s := range scalings {
		rest = strings.TrimSpace(strings.ReplaceAll(rest, s, ""))
	}

	attr := Attribute{Name: name}
	for _, s := range scalings {
		m, err := p.scaling(strings.TrimSpace(s))
		if err != nil {
			return Attribute{}, withAttribute(name, err)
		}
		attr.Modifiers = append(attr.Modifiers, m)
	}

	for _, f := range flatFragments(rest) {
		m, err := p.flat(f)
		if err != nil {
			return Attribute{}, withAttribute(name, err)
		}
		attr.Modifiers = append(attr.Modifiers, m)
	}

	if len(attr.Modifiers) == 0 {
		return Attribute{}, &ParseError{Err: ErrEmptyAttribute, Attribute: name, Fragment: body}
	}
	return attr, nil
}

// flatFragments returns the base-value fragments of s with ratios already
// removed. "Damage: 10 + 5" yields two fragments.
func flatFragments(s string) []string {
	var out []string
	for _, m := range flatPattern.FindAllStringSubmatch(s, -1) {
		out = append(out, strings.Split(strings.TrimSpace(m[1]), " + ")...)
	}
	if len(out) == 0 && isBareValue(s) {
		out = append(out, s)
	}
	return out
}

// isBareValue reports whether s is nothing but a value: "60", or a list of
// three or five ranks such as "1 / 2 / 3 / 4 / 5%".
func isBareValue(s string) bool {
	nums := findNumbers(s)
	seps := strings.Count(s, rankSeparator)
	switch {
	case seps == 4 && len(nums) == 5, seps == 2 && len(nums) == 3:
		return true
	case len(nums) == 1:
		return nums[0].start == 0 && nums[0].end == len(s)
	}
	return false
}
