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

// Package encoder writes typed entities back out as markup.  Each entity
// reports its attributes and its children through visitor callbacks; Write
// walks the tree top-down and forwards start and end events to a Sink.
package encoder

import (
	"fmt"

	"m4o.io/xodr/internal/decoder"
)

// ErrMaxDepthExceeded is returned when an entity tree nests deeper than
// MaxDepth.  Reading and writing share the sentinel.
var ErrMaxDepthExceeded = decoder.ErrMaxDepthExceeded

// MaxDepth bounds the nesting of written elements.
const MaxDepth = decoder.DefaultMaxDepth

// Attr is a single name/value attribute pair in its final textual form.
type Attr struct {
	Name  string
	Value string
}

// AttrVisitor receives the attributes of an element, in declaration order.
type AttrVisitor func(attrs []Attr) error

// ChildVisitor is invoked once for every present child, in field order.
type ChildVisitor func(name string, child Element) error

// Element is implemented by every entity that can be written.
type Element interface {
	VisitAttributes(visit AttrVisitor) error
	VisitChildren(visit ChildVisitor) error
}

// Sink consumes the element events produced by Write.
type Sink interface {
	StartElement(name string, attrs []Attr) error
	EndElement(name string) error
}

// Write emits e, named name, and all of its descendants to sink.  Attributes
// of an element are always emitted before any of its children.
func Write(sink Sink, name string, e Element) error {
	return write(sink, name, e, 0)
}

func write(sink Sink, name string, e Element, depth int) error {
	if depth >= MaxDepth {
		return fmt.Errorf("%w: <%s> at depth %d", ErrMaxDepthExceeded, name, depth)
	}

	var attrs []Attr
	if err := e.VisitAttributes(func(a []Attr) error {
		attrs = a

		return nil
	}); err != nil {
		return fmt.Errorf("<%s>: %w", name, err)
	}

	if err := sink.StartElement(name, attrs); err != nil {
		return fmt.Errorf("could not start <%s>: %w", name, err)
	}

	if err := e.VisitChildren(func(child string, c Element) error {
		return write(sink, child, c, depth+1)
	}); err != nil {
		return err
	}

	if err := sink.EndElement(name); err != nil {
		return fmt.Errorf("could not end <%s>: %w", name, err)
	}

	return nil
}

// Child is a named child element awaiting a visit.
type Child struct {
	Name    string
	Element Element
}

// One returns e as the single child name.
func One(name string, e Element) []Child {
	return []Child{{Name: name, Element: e}}
}

// Opt returns v as the child name, or nothing if v is nil.
func Opt[T any, PT interface {
	*T
	Element
}](name string, v PT) []Child {
	if v == nil {
		return nil
	}

	return []Child{{Name: name, Element: v}}
}

// Each returns every element of s as a child name, in order.
func Each[T any, PT interface {
	*T
	Element
}](name string, s []T) []Child {
	children := make([]Child, len(s))
	for i := range s {
		children[i] = Child{Name: name, Element: PT(&s[i])}
	}

	return children
}

// Visit invokes visit for every child of groups, in order.
func Visit(visit ChildVisitor, groups ...[]Child) error {
	for _, g := range groups {
		for _, c := range g {
			if err := visit(c.Name, c.Element); err != nil {
				return err
			}
		}
	}

	return nil
}

// NoChildren is a VisitChildren implementation for leaf entities.
func NoChildren(ChildVisitor) error {
	return nil
}
