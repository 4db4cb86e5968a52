// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decoder

import (
	"encoding"
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	"m4o.io/xodr/internal/lexical"
)

// Expecter is implemented by text types that can describe the values they
// accept, e.g. the tokens of an enumeration.
type Expecter interface {
	Expected() string
}

func (r *ReadContext) lookup(name string) (string, bool) {
	for _, a := range r.attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

func (r *ReadContext) missing(name string) error {
	return &MissingAttributeError{Element: r.name, Attribute: name, Line: r.line}
}

func (r *ReadContext) invalid(name, value, expected string, err error) error {
	return &InvalidValueError{
		Element:   r.name,
		Attribute: name,
		Value:     value,
		Expected:  expected,
		Line:      r.line,
		Err:       err,
	}
}

// Attr coerces the required attribute name using parse.  expected names the
// target kind in diagnostics.
func Attr[T any](r *ReadContext, name, expected string, parse func(string) (T, error)) (T, error) {
	var zero T

	raw, ok := r.lookup(name)
	if !ok {
		return zero, r.missing(name)
	}

	v, err := parse(raw)
	if err != nil {
		return zero, r.invalid(name, raw, expected, err)
	}

	return v, nil
}

// OptAttr coerces the optional attribute name using parse.  It returns nil if
// the attribute is absent.
func OptAttr[T any](r *ReadContext, name, expected string, parse func(string) (T, error)) (*T, error) {
	raw, ok := r.lookup(name)
	if !ok {
		return nil, nil
	}

	v, err := parse(raw)
	if err != nil {
		return nil, r.invalid(name, raw, expected, err)
	}

	return &v, nil
}

func parseString(s string) (string, error) { return s, nil }

func parseFloat(s string) (float64, error) { return lexical.ParseFloat(s) }

// ParseBool accepts the lexical forms of an XML Schema boolean.
func ParseBool(s string) (bool, error) {
	switch {
	case lexical.EqualFold(s, "true"), s == "1":
		return true, nil
	case lexical.EqualFold(s, "false"), s == "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

// String returns the required text attribute name.
func (r *ReadContext) String(name string) (string, error) {
	return Attr(r, name, "text", parseString)
}

// OptString returns the optional text attribute name.
func (r *ReadContext) OptString(name string) (*string, error) {
	return OptAttr(r, name, "text", parseString)
}

// Float returns the required floating point attribute name.
func (r *ReadContext) Float(name string) (float64, error) {
	return Attr(r, name, "float", parseFloat)
}

// OptFloat returns the optional floating point attribute name.
func (r *ReadContext) OptFloat(name string) (*float64, error) {
	return OptAttr(r, name, "float", parseFloat)
}

// Bool returns the required boolean attribute name.
func (r *ReadContext) Bool(name string) (bool, error) {
	return Attr(r, name, "boolean", ParseBool)
}

// OptBool returns the optional boolean attribute name.
func (r *ReadContext) OptBool(name string) (*bool, error) {
	return OptAttr(r, name, "boolean", ParseBool)
}

func bitSize[T constraints.Integer]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

func parseSigned[T constraints.Signed](s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitSize[T]())

	return T(v), err
}

func parseUnsigned[T constraints.Unsigned](s string) (T, error) {
	v, err := strconv.ParseUint(s, 10, bitSize[T]())

	return T(v), err
}

// Int returns the required signed integer attribute name.
func Int[T constraints.Signed](r *ReadContext, name string) (T, error) {
	return Attr(r, name, fmt.Sprintf("int%d", bitSize[T]()), parseSigned[T])
}

// OptInt returns the optional signed integer attribute name.
func OptInt[T constraints.Signed](r *ReadContext, name string) (*T, error) {
	return OptAttr(r, name, fmt.Sprintf("int%d", bitSize[T]()), parseSigned[T])
}

// Uint returns the required unsigned integer attribute name.
func Uint[T constraints.Unsigned](r *ReadContext, name string) (T, error) {
	return Attr(r, name, fmt.Sprintf("uint%d", bitSize[T]()), parseUnsigned[T])
}

// OptUint returns the optional unsigned integer attribute name.
func OptUint[T constraints.Unsigned](r *ReadContext, name string) (*T, error) {
	return OptAttr(r, name, fmt.Sprintf("uint%d", bitSize[T]()), parseUnsigned[T])
}

func expectation[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() string {
	var v T
	if e, ok := any(PT(&v)).(Expecter); ok {
		return e.Expected()
	}

	return fmt.Sprintf("%T", v)
}

func parseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	err := PT(&v).UnmarshalText([]byte(s))

	return v, err
}

// Text returns the required attribute name decoded by T's UnmarshalText.
// Enumerations and unit types are read this way.
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](r *ReadContext, name string) (T, error) {
	return Attr(r, name, expectation[T, PT](), parseText[T, PT])
}

// OptText returns the optional attribute name decoded by T's UnmarshalText.
func OptText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](r *ReadContext, name string) (*T, error) {
	return OptAttr(r, name, expectation[T, PT](), parseText[T, PT])
}
