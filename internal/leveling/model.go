package leveling

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sign tells whether a modifier adds to or subtracts from the attribute.
type Sign string

const (
	Plus  Sign = "+"
	Minus Sign = "-"
)

// Value is a single per-rank number. A handful of source phrasings put a
// word where the number should be; Text holds it then and Num is zero.
type Value struct {
	Num  float64
	Text string
}

// Num wraps a plain number.
func Num(f float64) Value {
	return Value{Num: f}
}

// Nums wraps a list of plain numbers.
func Nums(fs ...float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = Num(f)
	}
	return out
}

// IsText reports whether the value is a word rather than a number.
func (v Value) IsText() bool {
	return v.Text != ""
}

func (v Value) String() string {
	if v.IsText() {
		return v.Text
	}
	return strconv.FormatFloat(v.Num, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsText() {
		return json.Marshal(v.Text)
	}
	return json.Marshal(v.Num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		v.Num = 0
		return json.Unmarshal(data, &v.Text)
	}
	v.Text = ""
	if err := json.Unmarshal(data, &v.Num); err != nil {
		return fmt.Errorf("value %s: %w", data, err)
	}
	return nil
}

// AttributeModifier is one signed per-rank series: either the flat base
// value of an attribute or a ratio on a secondary stat.
// Values and Units always have the same length.
type AttributeModifier struct {
	Sign   Sign     `json:"sign"`
	Values []Value  `json:"values"`
	Units  []string `json:"units"`
}

// Ranks returns how many ranks the modifier covers.
func (m AttributeModifier) Ranks() int {
	return len(m.Values)
}

// Equal compares two modifiers structurally.
func (m AttributeModifier) Equal(o AttributeModifier) bool {
	return m.Sign == o.Sign && slices.Equal(m.Values, o.Values) && slices.Equal(m.Units, o.Units)
}

// Text renders the modifier back into the "10 / 20 / 30" form it is
// written in on ability pages.
func (m AttributeModifier) Text() string {
	parts := make([]string, m.Ranks())
	for i, v := range m.Values {
		parts[i] = v.String() + m.Units[i]
	}
	return strings.Join(parts, rankSeparator)
}

// Attribute is a named group of modifiers found under one label, e.g.
// "Magic Damage" with a flat series and an AP ratio.
type Attribute struct {
	Name      string              `json:"attribute"`
	Modifiers []AttributeModifier `json:"modifiers"`
}

// Equal compares two attributes structurally.
func (a Attribute) Equal(o Attribute) bool {
	return a.Name == o.Name && slices.EqualFunc(a.Modifiers, o.Modifiers, AttributeModifier.Equal)
}

// ultimate returns the attribute as seen by an ultimate: every five-rank
// series is reduced to ranks 1, 3 and 5.
func (a Attribute) ultimate() Attribute {
	mods := make([]AttributeModifier, len(a.Modifiers))
	for i, m := range a.Modifiers {
		mods[i] = AttributeModifier{
			Sign:   m.Sign,
			Values: sampleUltimate(m.Values),
			Units:  sampleUltimate(m.Units),
		}
	}
	return Attribute{Name: a.Name, Modifiers: mods}
}

func sampleUltimate[T any](s []T) []T {
	if len(s) != DefaultLevels {
		return s
	}
	return []T{s[0], s[2], s[4]}
}

// Kind is the ability slot a leveling block belongs to.
type Kind int

const (
	Passive Kind = iota
	Q
	W
	E
	R

	// Unknown marks a slot letter the pages do not define. It is not ranked.
	Unknown Kind = -1
)

var kindNames = [...]string{"P", "Q", "W", "E", "R"}

func (k Kind) String() string {
	if k == Unknown {
		return "unknown"
	}
	if k < Passive || k > R {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Ranked reports whether abilities of this kind level up with skill points.
func (k Kind) Ranked() bool {
	return k >= Q && k <= R
}

// ParseKind accepts the slot letters used on ability pages. "I" (innate)
// is an alias for the passive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "P", "I":
		return Passive, nil
	case "Q":
		return Q, nil
	case "W":
		return W, nil
	case "E":
		return E, nil
	case "R":
		return R, nil
	}
	return Unknown, fmt.Errorf("unknown ability kind %q", s)
}
