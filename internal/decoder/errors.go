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
	"errors"
	"fmt"
)

// ErrMaxDepthExceeded is returned when elements nest deeper than the
// configured limit.
var ErrMaxDepthExceeded = errors.New("maximum element depth exceeded")

// ErrUnexpectedEOF is returned when the token stream ends inside an element.
var ErrUnexpectedEOF = errors.New("unexpected end of token stream")

// MissingAttributeError reports a required attribute that is absent.
type MissingAttributeError struct {
	Element   string
	Attribute string
	Line      int
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s<%s>: missing attribute %q", line(e.Line), e.Element, e.Attribute)
}

// InvalidValueError reports an attribute that is present but cannot be
// parsed into its target type.
type InvalidValueError struct {
	Element   string
	Attribute string
	Value     string
	Expected  string
	Line      int
	Err       error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s<%s>: invalid value %q for attribute %q, expected %s",
		line(e.Line), e.Element, e.Value, e.Attribute, e.Expected)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// MissingElementError reports a required child element that never appeared
// before its parent closed.
type MissingElementError struct {
	Parent string
	Tag    string
	Line   int
}

func (e *MissingElementError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("%smissing root element <%s>", line(e.Line), e.Tag)
	}

	return fmt.Sprintf("%s<%s>: missing child element <%s>", line(e.Line), e.Parent, e.Tag)
}

// DuplicateElementError reports a second occurrence of a singular child.
type DuplicateElementError struct {
	Parent string
	Tag    string
	Line   int
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("%s<%s>: duplicate child element <%s>", line(e.Line), e.Parent, e.Tag)
}

// UnexpectedChildElementError reports a child element where none is allowed.
type UnexpectedChildElementError struct {
	Parent string
	Tag    string
	Line   int
}

func (e *UnexpectedChildElementError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("%sunexpected root element <%s>", line(e.Line), e.Tag)
	}

	return fmt.Sprintf("%s<%s>: unexpected child element <%s>", line(e.Line), e.Parent, e.Tag)
}

// SyntaxError wraps a failure of the underlying token stream.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%smarkup error: %v", line(e.Line), e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func line(n int) string {
	if n <= 0 {
		return ""
	}

	return fmt.Sprintf("line %d: ", n)
}
