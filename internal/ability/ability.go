package ability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/and-zheng/lolstaticdata/internal/leveling"
)

// Field is one parameter of an ability page after processing. Exactly one of
// Text, Leveling or Attribute carries the value.
type Field struct {
	Name      string
	Text      string
	Leveling  []leveling.Attribute
	Attribute *leveling.Attribute
}

// Parsed reports whether the field holds structured data rather than text.
func (f Field) Parsed() bool {
	return f.Leveling != nil || f.Attribute != nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Parsed() {
		return json.Marshal(f.Text)
	}
	if f.Attribute != nil {
		return json.Marshal(f.Attribute)
	}
	return json.Marshal(f.Leveling)
}

// Ability is the processed data page of one ability. Fields keep the order of
// the page.
type Ability struct {
	Name   string
	Kind   leveling.Kind
	Fields []Field
}

// Field returns the field with the given parameter name.
func (a Ability) Field(name string) (Field, bool) {
	i := slices.IndexFunc(a.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return a.Fields[i], true
}

// MarshalJSON writes the ability as an object keyed by parameter name, in page order.
func (a Ability) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range a.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Fingerprint identifies an ability by content. Pages stored under different
// names ("Switcheroo!", "Switcheroo! 2") that carry the same parameters share
// a fingerprint.
func (a Ability) Fingerprint() ([blake2b.Size256]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return [blake2b.Size256]byte{}, fmt.Errorf("encoding ability %s: %w", a.Name, err)
	}
	return blake2b.Sum256(data), nil
}

// Equal compares two abilities structurally.
func (a Ability) Equal(o Ability) bool {
	return a.Name == o.Name && a.Kind == o.Kind && slices.EqualFunc(a.Fields, o.Fields, fieldEqual)
}

func fieldEqual(a, b Field) bool {
	if a.Name != b.Name || a.Text != b.Text {
		return false
	}
	if (a.Attribute == nil) != (b.Attribute == nil) {
		return false
	}
	if a.Attribute != nil && !a.Attribute.Equal(*b.Attribute) {
		return false
	}
	if (a.Leveling == nil) != (b.Leveling == nil) {
		return false
	}
	return slices.EqualFunc(a.Leveling, b.Leveling, leveling.Attribute.Equal)
}
