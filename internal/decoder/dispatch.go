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
	"encoding/xml"
	"slices"
	"strings"
)

// Cardinality is the number of times a child element may appear.
type Cardinality int

const (
	// AtMostOnce permits zero or one occurrence.
	AtMostOnce Cardinality = iota

	// ExactlyOnce requires one occurrence.
	ExactlyOnce

	// Any permits zero or more occurrences.
	Any

	// AtLeastOnce requires one or more occurrences.
	AtLeastOnce
)

func (c Cardinality) singular() bool {
	return c == AtMostOnce || c == ExactlyOnce
}

func (c Cardinality) mandatory() bool {
	return c == ExactlyOnce || c == AtLeastOnce
}

// Handler is one entry of a dispatch table: the tags it accepts, how often
// they may appear and the function that constructs the child.
type Handler struct {
	Tags        []string
	Cardinality Cardinality
	Parse       func(r *ReadContext) error
}

func (h Handler) label() string {
	return strings.Join(h.Tags, "|")
}

func newHandler(tag string, c Cardinality, parse func(r *ReadContext) error) Handler {
	return Handler{Tags: []string{tag}, Cardinality: c, Parse: parse}
}

// Optional accepts zero or one tag element.
func Optional(tag string, parse func(r *ReadContext) error) Handler {
	return newHandler(tag, AtMostOnce, parse)
}

// Required accepts exactly one tag element.
func Required(tag string, parse func(r *ReadContext) error) Handler {
	return newHandler(tag, ExactlyOnce, parse)
}

// Repeated accepts any number of tag elements.
func Repeated(tag string, parse func(r *ReadContext) error) Handler {
	return newHandler(tag, Any, parse)
}

// OneOrMore accepts at least one tag element.
func OneOrMore(tag string, parse func(r *ReadContext) error) Handler {
	return newHandler(tag, AtLeastOnce, parse)
}

// Alternative is one branch of a choice group.
type Alternative struct {
	Tag   string
	Parse func(r *ReadContext) error
}

// Alt creates an Alternative.
func Alt(tag string, parse func(r *ReadContext) error) Alternative {
	return Alternative{Tag: tag, Parse: parse}
}

// OneOf groups alternatives whose combined occurrences obey c.  With
// ExactlyOnce this expresses "exactly one of", with AtMostOnce "at most one
// of".
func OneOf(c Cardinality, alts ...Alternative) Handler {
	tags := make([]string, len(alts))
	for i, a := range alts {
		tags[i] = a.Tag
	}

	return Handler{
		Tags:        tags,
		Cardinality: c,
		Parse: func(r *ReadContext) error {
			for _, a := range alts {
				if a.Tag == r.Name() {
					return a.Parse(r)
				}
			}

			return nil
		},
	}
}

// Children consumes the child elements of the current element until its
// end tag, routing each one to the handler that accepts its tag.  Unknown
// children are skipped together with their whole subtree.  Cardinality is
// checked as elements arrive and once more when the element closes.
func (r *ReadContext) Children(handlers ...Handler) error {
	if r.closed {
		return nil
	}

	counts := make([]int, len(handlers))

	for {
		tok, err := r.cursor.Next()
		if err != nil {
			return r.cursor.unexpected(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			tag := t.Name.Local

			i := slices.IndexFunc(handlers, func(h Handler) bool {
				return slices.Contains(h.Tags, tag)
			})
			if i < 0 {
				if err := r.cursor.Skip(); err != nil {
					return err
				}

				continue
			}

			h := handlers[i]
			counts[i]++

			if counts[i] > 1 && h.Cardinality.singular() {
				return &DuplicateElementError{Parent: r.name, Tag: tag, Line: r.cursor.Line()}
			}

			child := newReadContext(r.cursor, t)
			if err := h.Parse(child); err != nil {
				return err
			}

			if err := child.finish(); err != nil {
				return err
			}

		case xml.EndElement:
			r.closed = true

			for i, h := range handlers {
				if counts[i] == 0 && h.Cardinality.mandatory() {
					return &MissingElementError{Parent: r.name, Tag: h.label(), Line: r.cursor.Line()}
				}
			}

			return nil
		}
	}
}
