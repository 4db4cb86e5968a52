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
	"encoding/xml"
	"io"

	"github.com/shabbyrobe/xmlwriter"
)

// XMLSink writes element events as XML text.
type XMLSink struct {
	w       *xmlwriter.Writer
	started bool
}

var _ Sink = (*XMLSink)(nil)

// NewXMLSink creates a sink writing to w.  The XML declaration is written
// before the first element.
func NewXMLSink(w io.Writer, opts ...xmlwriter.Option) *XMLSink {
	return &XMLSink{w: xmlwriter.Open(w, opts...)}
}

// StartElement implements Sink.
func (s *XMLSink) StartElement(name string, attrs []Attr) error {
	if !s.started {
		if err := s.w.StartDoc(xmlwriter.Doc{}); err != nil {
			return err
		}

		s.started = true
	}

	if err := s.w.StartElem(xmlwriter.Elem{Name: name}); err != nil {
		return err
	}

	for _, a := range attrs {
		if err := s.w.WriteAttr(xmlwriter.Attr{Name: a.Name, Value: a.Value}); err != nil {
			return err
		}
	}

	return nil
}

// EndElement implements Sink.
func (s *XMLSink) EndElement(name string) error {
	return s.w.End(xmlwriter.ElemNode, name)
}

// Close ends any open nodes and flushes buffered output.
func (s *XMLSink) Close() error {
	return s.w.EndAllFlush()
}

// TokenBuffer records element events as encoding/xml tokens.  It is itself an
// xml.TokenReader, so a written document can be read back without an
// intermediate text form.
type TokenBuffer struct {
	tokens []xml.Token
	next   int
}

var (
	_ Sink            = (*TokenBuffer)(nil)
	_ xml.TokenReader = (*TokenBuffer)(nil)
)

// StartElement implements Sink.
func (b *TokenBuffer) StartElement(name string, attrs []Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for _, a := range attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	b.tokens = append(b.tokens, start)

	return nil
}

// EndElement implements Sink.
func (b *TokenBuffer) EndElement(name string) error {
	b.tokens = append(b.tokens, xml.EndElement{Name: xml.Name{Local: name}})

	return nil
}

// Tokens returns the recorded tokens.
func (b *TokenBuffer) Tokens() []xml.Token {
	return b.tokens
}

// Token implements xml.TokenReader, replaying the recorded tokens.
func (b *TokenBuffer) Token() (xml.Token, error) {
	if b.next >= len(b.tokens) {
		return nil, io.EOF
	}

	tok := b.tokens[b.next]
	b.next++

	return tok, nil
}
