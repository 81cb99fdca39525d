package testutil

import (
	"testing"

	"github.com/and-zheng/lolstaticdata/internal/leveling"
)

// AssertValues checks the per-rank numbers of a modifier.
func AssertValues(t testing.TB, expected []float64, m leveling.AttributeModifier) {
	t.Helper()

	if len(m.Values) != len(expected) {
		t.Fatalf("rank count mismatch: expected %d, got %d (%s)", len(expected), len(m.Values), m.Text())
	}
	for i, v := range m.Values {
		if v.IsText() {
			t.Fatalf("rank %d: expected %v, got word %q", i, expected[i], v.Text)
		}
		if v.Num != expected[i] {
			t.Fatalf("rank %d: expected %v, got %v (%s)", i, expected[i], v.Num, m.Text())
		}
	}
}

// AssertUnit checks that every rank of a modifier carries the given unit.
func AssertUnit(t testing.TB, expected string, m leveling.AttributeModifier) {
	t.Helper()

	for i, u := range m.Units {
		if u != expected {
			t.Fatalf("rank %d unit mismatch: expected %q, got %q", i, expected, u)
		}
	}
}
