package leveling

import (
	"strconv"
	"strings"
	"unicode"
)

// number is one decimal literal located inside a fragment.
type number struct {
	start, end int
	value      float64
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// findNumbers returns every decimal literal in s, left to right.
// A literal is a run of digits with at most one decimal point after it;
// signs, exponents and thousands separators are not part of the grammar.
func findNumbers(s string) []number {
	var out []number
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '.' {
			j++
			for j < len(s) && isDigit(s[j]) {
				j++
			}
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(s[i:j], "."), 64)
		if err == nil {
			out = append(out, number{start: i, end: j, value: v})
		}
		i = j
	}
	return out
}

// leadingNumber reads the literal the fragment starts with (leading
// whitespace aside) and returns it with the verbatim remainder, which is
// the unit.
func leadingNumber(fragment string) (float64, string, error) {
	s := strings.TrimLeftFunc(fragment, unicode.IsSpace)
	nums := findNumbers(s)
	if len(nums) == 0 || nums[0].start != 0 {
		return 0, "", failf(ErrMalformedValue, fragment)
	}
	return nums[0].value, s[nums[0].end:], nil
}
