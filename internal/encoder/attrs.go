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

package encoder

import (
	"encoding"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// FormatFloat renders v in the shortest scientific notation that parses
// back to exactly v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', -1, 64)
}

// FormatBool renders v as an XML Schema boolean.
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}

// AttrBuilder accumulates attributes in declaration order.  Optional values
// that are nil are skipped.  The first marshaling error is kept and
// reported by Visit.
type AttrBuilder struct {
	attrs []Attr
	err   error
}

// Attrs returns the accumulated attributes and the first error, if any.
func (b *AttrBuilder) Attrs() ([]Attr, error) {
	return b.attrs, b.err
}

// Visit hands the accumulated attributes to visit.
func (b *AttrBuilder) Visit(visit AttrVisitor) error {
	if b.err != nil {
		return b.err
	}

	return visit(b.attrs)
}

func (b *AttrBuilder) add(name, value string) *AttrBuilder {
	b.attrs = append(b.attrs, Attr{Name: name, Value: value})

	return b
}

// String adds a text attribute.
func (b *AttrBuilder) String(name, v string) *AttrBuilder {
	return b.add(name, v)
}

// OptString adds a text attribute if v is not nil.
func (b *AttrBuilder) OptString(name string, v *string) *AttrBuilder {
	if v == nil {
		return b
	}

	return b.add(name, *v)
}

// Float adds a floating point attribute.
func (b *AttrBuilder) Float(name string, v float64) *AttrBuilder {
	return b.add(name, FormatFloat(v))
}

// OptFloat adds a floating point attribute if v is not nil.
func (b *AttrBuilder) OptFloat(name string, v *float64) *AttrBuilder {
	if v == nil {
		return b
	}

	return b.Float(name, *v)
}

// Bool adds a boolean attribute.
func (b *AttrBuilder) Bool(name string, v bool) *AttrBuilder {
	return b.add(name, FormatBool(v))
}

// OptBool adds a boolean attribute if v is not nil.
func (b *AttrBuilder) OptBool(name string, v *bool) *AttrBuilder {
	if v == nil {
		return b
	}

	return b.Bool(name, *v)
}

// Text adds an attribute rendered by v's MarshalText.
func (b *AttrBuilder) Text(name string, v encoding.TextMarshaler) *AttrBuilder {
	text, err := v.MarshalText()
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("attribute %q: %w", name, err)
		}

		return b
	}

	return b.add(name, string(text))
}

// OptText adds an attribute rendered by MarshalText if v is not nil.
func OptText[T encoding.TextMarshaler](b *AttrBuilder, name string, v *T) *AttrBuilder {
	if v == nil {
		return b
	}

	return b.Text(name, *v)
}

// Int adds an integer attribute.
func Int[T constraints.Integer](b *AttrBuilder, name string, v T) *AttrBuilder {
	return b.add(name, fmt.Sprintf("%d", v))
}

// OptInt adds an integer attribute if v is not nil.
func OptInt[T constraints.Integer](b *AttrBuilder, name string, v *T) *AttrBuilder {
	if v == nil {
		return b
	}

	return Int(b, name, *v)
}
