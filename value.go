// File: miniconf/value.go
package miniconf

import (
	"errors"
	"strconv"
)

// ErrTypeMismatch is returned by a typed accessor when the value's active
// kind does not match the requested type.
var ErrTypeMismatch = errors.New("value type mismatch")

// Kind identifies the scalar type carried by a Value.
type Kind int

const (
	KindUnknown Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
)

// String returns the machine name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a scalar configuration value: exactly one of int, float, bool or
// string, or the empty Unknown value. Values have plain value semantics;
// assignment and map storage always copy, so no two Values share storage.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Unknown returns the empty value.
func Unknown() Value {
	return Value{}
}

// NewInt creates an integer value.
func NewInt(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// NewFloat creates a floating-point value.
func NewFloat(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// NewBool creates a boolean value.
func NewBool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// NewString creates a string value.
func NewString(v string) Value {
	return Value{kind: KindString, s: v}
}

// Kind returns the active kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the value carries no payload.
func (v Value) IsEmpty() bool {
	return v.kind == KindUnknown
}

// Int returns the integer payload, or ErrTypeMismatch if the active kind is
// not KindInt.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, ErrTypeMismatch
	}
	return v.i, nil
}

// Float returns the floating-point payload, or ErrTypeMismatch if the active
// kind is not KindFloat.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, ErrTypeMismatch
	}
	return v.f, nil
}

// Bool returns the boolean payload, or ErrTypeMismatch if the active kind is
// not KindBool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, ErrTypeMismatch
	}
	return v.b, nil
}

// String returns the string payload, or ErrTypeMismatch if the active kind is
// not KindString.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", ErrTypeMismatch
	}
	return v.s, nil
}

// Print renders the value as canonical text: "null" for the empty value,
// decimal for integers, fixed-point for floats, "true"/"false" for booleans
// and quoted text for strings.
func (v Value) Print() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', 6, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strconv.Quote(v.s)
	default:
		return "null"
	}
}

// PrintKind returns the machine name of the active kind.
func (v Value) PrintKind() string {
	return v.kind.String()
}

// text renders the value without string quoting, for flat key,value output.
func (v Value) text() string {
	if v.kind == KindString {
		return v.s
	}
	return v.Print()
}

// native returns the payload as a plain Go value for tree serialization,
// or nil for the empty value.
func (v Value) native() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindString:
		return v.s
	default:
		return nil
	}
}
