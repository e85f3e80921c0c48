// Cadlang
// Copyright (C) the Cadlang project contributors
// Written by the Cadlang project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package types provides the dynamic value model that the language evaluator
// and the builtin functions all share. Every value in the language is one of
// a small, closed set of variants: undef, number, str, or list.
package types

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cadlang/cadlang/util/errwrap"
)

// Kind is the variant tag of a value. The set of kinds is closed, so consumers
// are expected to switch exhaustively over it.
type Kind int

const (
	// KindUndef is the sentinel absence value. It is a value, not an error.
	KindUndef Kind = iota

	// KindNumber is a double precision floating point number.
	KindNumber

	// KindStr is unicode text. Length and indexing are codepoint based.
	KindStr

	// KindList is an ordered sequence of values. It may be empty, nested,
	// and heterogeneous.
	KindList
)

// String returns a human readable name for this kind.
func (k Kind) String() string {
	switch k {
	case KindUndef:
		return "undef"
	case KindNumber:
		return "number"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Value represents an interface to get values out of each variant. It is
// similar in shape to the reflection interfaces in the golang standard
// library, except that the accessors fail soft: asking a value for a variant
// it doesn't hold returns that variant's zero value, it never panics. The
// evaluator builds these fresh for every call and they are owned by whoever
// holds them; nothing here is shared or locked.
type Value interface {
	fmt.Stringer // String() string (for display purposes)
	Kind() Kind
	Less(Value) bool // ordering, meaningful for numbers only
	Cmp(Value) error // error if the two values aren't the same
	Copy() Value     // returns a copy of this value
	Value() interface{}
	Num() float64
	Str() string
	List() []Value
}

// base implements the soft-failing accessors that each variant embeds. A
// variant overrides only the accessor that matches its own kind.
type base struct{}

// Num returns the zero number since this variant isn't a number.
func (obj *base) Num() float64 { return 0 }

// Str returns the empty string since this variant isn't a str.
func (obj *base) Str() string { return "" }

// List returns nil since this variant isn't a list.
func (obj *base) List() []Value { return nil }

// Less returns false since ordering is undefined for this variant. Values of
// different kinds never order before each other.
func (obj *base) Less(v Value) bool { return false }

// UndefValue represents the undefined value.
type UndefValue struct {
	base
}

// String returns a visual representation of this value.
func (obj *UndefValue) String() string { return "undef" }

// Kind returns the variant tag of this value.
func (obj *UndefValue) Kind() Kind { return KindUndef }

// Cmp returns an error if this value isn't the same as the arg passed in. Two
// undefined values compare as the same.
func (obj *UndefValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if _, ok := val.(*UndefValue); !ok {
		return fmt.Errorf("values are different kinds")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *UndefValue) Copy() Value { return &UndefValue{} }

// Value returns the raw value of this type.
func (obj *UndefValue) Value() interface{} { return nil }

// NumberValue represents a number value. All numbers in the language are
// double precision floats.
type NumberValue struct {
	base
	V float64
}

// String returns a visual representation of this value.
func (obj *NumberValue) String() string {
	return strconv.FormatFloat(obj.V, 'f', -1, 64) // exact precision
}

// Kind returns the variant tag of this value.
func (obj *NumberValue) Kind() Kind { return KindNumber }

// Less compares to the value and returns true if we're smaller. A number is
// never less than a value of some other kind.
func (obj *NumberValue) Less(v Value) bool {
	n, ok := v.(*NumberValue)
	if !ok {
		return false
	}
	return obj.V < n.V
}

// Cmp returns an error if this value isn't the same as the arg passed in. A
// value of a different kind is different, it is not an error of its own.
func (obj *NumberValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	n, ok := val.(*NumberValue)
	if !ok {
		return fmt.Errorf("values are different kinds")
	}
	if obj.V != n.V {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *NumberValue) Copy() Value { return &NumberValue{V: obj.V} }

// Value returns the raw value of this type.
func (obj *NumberValue) Value() interface{} { return obj.V }

// Num returns the number this value holds.
func (obj *NumberValue) Num() float64 { return obj.V }

// StrValue represents a string value. The text is unicode, and all length and
// position semantics in the language are in codepoints, not bytes.
type StrValue struct {
	base
	V string
}

// String returns a visual representation of this value.
func (obj *StrValue) String() string {
	return strconv.Quote(obj.V) // wraps in quotes, turns tabs into \t etc...
}

// Kind returns the variant tag of this value.
func (obj *StrValue) Kind() Kind { return KindStr }

// Cmp returns an error if this value isn't the same as the arg passed in.
func (obj *StrValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	s, ok := val.(*StrValue)
	if !ok {
		return fmt.Errorf("values are different kinds")
	}
	if obj.V != s.V {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *StrValue) Copy() Value { return &StrValue{V: obj.V} }

// Value returns the raw value of this type.
func (obj *StrValue) Value() interface{} { return obj.V }

// Str returns the text this value holds.
func (obj *StrValue) Str() string { return obj.V }

// ListValue represents an ordered collection of values. It does not constrain
// the kinds of its elements in any way.
type ListValue struct {
	base
	V []Value
}

// String returns a visual representation of this value.
func (obj *ListValue) String() string {
	var ss []string
	for _, x := range obj.V {
		ss = append(ss, x.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(ss, ", "))
}

// Kind returns the variant tag of this value.
func (obj *ListValue) Kind() Kind { return KindList }

// Cmp returns an error if this value isn't the same as the arg passed in. The
// comparison recurses into the elements.
func (obj *ListValue) Cmp(val Value) error {
	if obj == nil || val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	l, ok := val.(*ListValue)
	if !ok {
		return fmt.Errorf("values are different kinds")
	}
	if len(obj.V) != len(l.V) {
		return fmt.Errorf("lists have different lengths")
	}
	for i := range obj.V {
		if err := obj.V[i].Cmp(l.V[i]); err != nil {
			return errwrap.Wrapf(err, "index %d did not cmp", i)
		}
	}
	return nil
}

// Copy returns a copy of this value. The elements are copied recursively.
func (obj *ListValue) Copy() Value {
	v := []Value{}
	for _, x := range obj.V {
		v = append(v, x.Copy())
	}
	return &ListValue{V: v}
}

// Value returns the raw value of this type.
func (obj *ListValue) Value() interface{} {
	v := []interface{}{}
	for _, x := range obj.V {
		v = append(v, x.Value())
	}
	return v
}

// List returns the elements this value holds.
func (obj *ListValue) List() []Value { return obj.V }

// Text returns the raw text projection of a value. A string projects to its
// own text without quotes, everything else projects to its display form. This
// is what string building builtins use, so that str("a", 1) gives "a1" while
// a string nested inside a list still renders quoted.
func Text(v Value) string {
	if s, ok := v.(*StrValue); ok {
		return s.V
	}
	return v.String()
}

// ValueOfGolang is a helper that takes a golang value, and produces the
// equivalent internal representation. This is very useful for writing tests.
func ValueOfGolang(i interface{}) (Value, error) {
	return ValueOf(reflect.ValueOf(i))
}

// ValueOf takes a reflect.Value and returns an equivalent Value. Only kinds
// which have a representation in the language convert; everything numeric
// becomes a number.
func ValueOf(v reflect.Value) (Value, error) {
	value := v
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		value = value.Elem() // un-nest one level
	}

	if !value.IsValid() { // eg: a nil interface
		return &UndefValue{}, nil
	}

	switch value.Kind() {
	case reflect.String:
		return &StrValue{V: value.String()}, nil

	case reflect.Int, reflect.Int64, reflect.Int32, reflect.Int16, reflect.Int8:
		return &NumberValue{V: float64(value.Int())}, nil

	case reflect.Uint, reflect.Uint64, reflect.Uint32, reflect.Uint16, reflect.Uint8:
		return &NumberValue{V: float64(value.Uint())}, nil

	case reflect.Float64, reflect.Float32:
		return &NumberValue{V: value.Float()}, nil

	case reflect.Array, reflect.Slice:
		values := []Value{}
		for i := 0; i < value.Len(); i++ {
			x, err := ValueOf(value.Index(i)) // recurse
			if err != nil {
				return nil, errwrap.Wrapf(err, "index %d did not convert", i)
			}
			values = append(values, x)
		}
		return &ListValue{V: values}, nil

	default:
		return nil, fmt.Errorf("unable to represent value of %s", value.Kind())
	}
}
