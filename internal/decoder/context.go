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

// Package decoder turns a stream of markup tokens into typed entities.
//
// Every entity implements Unmarshaler.  Its UnmarshalXODR method is handed a
// ReadContext positioned just inside the entity's start tag: the attributes
// are available, the children are not yet consumed.  Composite entities pull
// their children through ReadContext.Children, leaf entities read their
// attributes and finish with ExpectNoChildren.
package decoder

import (
	"encoding/xml"
	"errors"
	"io"
)

// Unmarshaler is implemented by every entity that can be constructed from a
// ReadContext.
type Unmarshaler interface {
	UnmarshalXODR(r *ReadContext) error
}

// ReadContext combines the shared cursor with the attributes of the element
// currently being read.
type ReadContext struct {
	cursor *Cursor
	name   string
	attrs  []xml.Attr
	depth  int
	line   int
	closed bool
}

func newReadContext(c *Cursor, start xml.StartElement) *ReadContext {
	return &ReadContext{
		cursor: c,
		name:   start.Name.Local,
		attrs:  start.Attr,
		depth:  c.Depth(),
		line:   c.Line(),
	}
}

// Name returns the local name of the current element.
func (r *ReadContext) Name() string {
	return r.name
}

// Attrs returns the raw attribute list of the current element.
func (r *ReadContext) Attrs() []xml.Attr {
	return r.attrs
}

// Line returns the input line of the current element's start tag, or 0 if
// unknown.
func (r *ReadContext) Line() int {
	return r.line
}

// NoChildren consumes the rest of the current element and fails with an
// UnexpectedChildElementError if it contains any child element.
func (r *ReadContext) NoChildren() error {
	if r.closed {
		return nil
	}

	for {
		tok, err := r.cursor.Next()
		if err != nil {
			return r.cursor.unexpected(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return &UnexpectedChildElementError{Parent: r.name, Tag: t.Name.Local, Line: r.cursor.Line()}
		case xml.EndElement:
			if r.cursor.Depth() < r.depth {
				r.closed = true

				return nil
			}
		}
	}
}

// ExpectNoChildren asserts that the current element is a leaf before
// returning v.
func ExpectNoChildren[T any](r *ReadContext, v T) (T, error) {
	if err := r.NoChildren(); err != nil {
		var zero T

		return zero, err
	}

	return v, nil
}

// finish makes sure the cursor is positioned after the end tag of the
// current element, skipping whatever the entity left unread.
func (r *ReadContext) finish() error {
	if r.closed {
		return nil
	}

	if err := r.cursor.skipTo(r.depth); err != nil {
		return err
	}

	r.closed = true

	return nil
}

// Into returns a parse function that constructs a T into dst.
func Into[T any, PT interface {
	*T
	Unmarshaler
}](dst *T) func(r *ReadContext) error {
	return func(r *ReadContext) error {
		var v T
		if err := PT(&v).UnmarshalXODR(r); err != nil {
			return err
		}

		*dst = v

		return nil
	}
}

// IntoPtr returns a parse function that constructs a T and stores its
// address in dst.
func IntoPtr[T any, PT interface {
	*T
	Unmarshaler
}](dst **T) func(r *ReadContext) error {
	return func(r *ReadContext) error {
		v := new(T)
		if err := PT(v).UnmarshalXODR(r); err != nil {
			return err
		}

		*dst = v

		return nil
	}
}

// Append returns a parse function that constructs a T and appends it to dst.
func Append[T any, PT interface {
	*T
	Unmarshaler
}](dst *[]T) func(r *ReadContext) error {
	return func(r *ReadContext) error {
		var v T
		if err := PT(&v).UnmarshalXODR(r); err != nil {
			return err
		}

		*dst = append(*dst, v)

		return nil
	}
}

// Root reads tokens up to the document's root element, which must be named
// name, and constructs a T from it.
func Root[T any, PT interface {
	*T
	Unmarshaler
}](c *Cursor, name string) (*T, error) {
	for {
		tok, err := c.Next()
		if errors.Is(err, io.EOF) {
			return nil, &MissingElementError{Tag: name, Line: c.Line()}
		} else if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Local != name {
			return nil, &UnexpectedChildElementError{Tag: start.Name.Local, Line: c.Line()}
		}

		r := newReadContext(c, start)
		v := new(T)

		if err := PT(v).UnmarshalXODR(r); err != nil {
			return nil, err
		}

		if err := r.finish(); err != nil {
			return nil, err
		}

		return v, nil
	}
}
