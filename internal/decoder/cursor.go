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
	"errors"
	"fmt"
	"io"
)

// DefaultMaxDepth is the default limit on element nesting.
const DefaultMaxDepth = 256

// Cursor is a forward-only view over a stream of markup tokens.  It tracks
// the element depth so that subtrees can be skipped without recursion and
// so that adversarial nesting is bounded.
//
// A Cursor is owned by a single parse and must not be shared.
type Cursor struct {
	tokens   xml.TokenReader
	pending  error
	depth    int
	maxDepth int
}

type positioned interface {
	InputPos() (line, column int)
}

// NewCursor creates a cursor over tokens.  A maxDepth of zero or less selects
// DefaultMaxDepth.
func NewCursor(tokens xml.TokenReader, maxDepth int) *Cursor {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Cursor{tokens: tokens, maxDepth: maxDepth}
}

// Depth returns the number of currently open elements.
func (c *Cursor) Depth() int {
	return c.depth
}

// Line returns the current line of the underlying input, or 0 if the token
// source does not track positions.
func (c *Cursor) Line() int {
	if p, ok := c.tokens.(positioned); ok {
		l, _ := p.InputPos()

		return l
	}

	return 0
}

// Next returns the next token.  The end of the stream is reported by io.EOF.
func (c *Cursor) Next() (xml.Token, error) {
	if c.pending != nil {
		err := c.pending
		c.pending = nil

		return nil, err
	}

	tok, err := c.tokens.Token()
	if err != nil {
		if tok == nil {
			return nil, c.wrap(err)
		}

		// a token and an error may arrive together; report the error next time
		c.pending = c.wrap(err)
	}

	switch tok.(type) {
	case xml.StartElement:
		c.depth++
		if c.depth > c.maxDepth {
			return nil, &SyntaxError{
				Line: c.Line(),
				Err:  fmt.Errorf("%w: limit is %d", ErrMaxDepthExceeded, c.maxDepth),
			}
		}
	case xml.EndElement:
		if c.depth == 0 {
			return nil, &SyntaxError{Line: c.Line(), Err: errors.New("unbalanced end element")}
		}
		c.depth--
	}

	return tok, nil
}

// skipTo consumes tokens until the depth drops below depth, i.e. until the
// element whose content starts at depth has been closed.
func (c *Cursor) skipTo(depth int) error {
	for c.depth >= depth {
		if _, err := c.Next(); err != nil {
			return c.unexpected(err)
		}
	}

	return nil
}

// Skip consumes the remainder of the element whose start token was the most
// recent one read, including all of its descendants.
func (c *Cursor) Skip() error {
	return c.skipTo(c.depth)
}

func (c *Cursor) wrap(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}

	var se *SyntaxError
	if errors.As(err, &se) {
		return err
	}

	return &SyntaxError{Line: c.Line(), Err: err}
}

// unexpected turns an end of stream inside an element into a syntax error.
func (c *Cursor) unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return &SyntaxError{Line: c.Line(), Err: ErrUnexpectedEOF}
	}

	return err
}
