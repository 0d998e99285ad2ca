// Package attr holds typed record attributes with an explicit missing
// sentinel, so downstream ranking can tell "absent" from "zero-valued".
package attr

import (
	"encoding/json"
	"strconv"
)

// Kind is the attribute value type.
type Kind int

// Attribute kinds. The zero value is Missing so an unset Value is missing.
const (
	Missing Kind = iota
	Int
	Real
	Text
)

// Value is a single typed attribute value.
type Value struct {
	kind Kind
	num  float64
	text string
}

// None returns the explicit missing value.
func None() Value { return Value{} }

// IntVal builds an integer attribute.
func IntVal(i int64) Value { return Value{kind: Int, num: float64(i)} }

// RealVal builds a real-number attribute.
func RealVal(f float64) Value { return Value{kind: Real, num: f} }

// TextVal builds a categorical string attribute.
func TextVal(s string) Value { return Value{kind: Text, text: s} }

// Kind returns the value type.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the attribute was absent from the record text.
func (v Value) IsMissing() bool { return v.kind == Missing }

// Num returns the numeric value. ok is false for Missing and Text values.
func (v Value) Num() (float64, bool) {
	if v.kind == Int || v.kind == Real {
		return v.num, true
	}
	return 0, false
}

// Text returns the string value. ok is false unless the kind is Text.
func (v Value) Text() (string, bool) {
	if v.kind == Text {
		return v.text, true
	}
	return "", false
}

// MarshalJSON encodes Int as an integer, Real as a float, Text as a string
// and Missing as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Int:
		return []byte(strconv.FormatInt(int64(v.num), 10)), nil
	case Real:
		return json.Marshal(v.num)
	case Text:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// Map is a named attribute set for one record.
type Map map[string]Value
