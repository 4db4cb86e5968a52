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


package xodr

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"m4o.io/xodr/internal/encoder"
	"m4o.io/xodr/model"
)

// Sink consumes the element events of an encoded document.
type Sink = encoder.Sink

// Attr is an attribute in its final textual form.
type Attr = encoder.Attr

// TokenBuffer is a Sink that records encoding/xml tokens and replays them as
// an xml.TokenReader.
type TokenBuffer = encoder.TokenBuffer

// EncodeTo emits doc to sink, parents before children and attributes before
// content.
func EncodeTo(sink Sink, doc *model.Document) error {
	return encoder.Write(sink, model.RootElement, doc)
}

// Encode writes doc as markup to w, configured with options.
//
// The packer is closed even when encoding fails, so the compressed stream in
// w is always terminated.  The first error wins.
func Encode(w io.Writer, doc *model.Document, opts ...EncoderOption) (err error) {
	cfg := defaultEncoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	packer, err := encoder.NewPacker(w, cfg.compression)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := packer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not flush %s packer: %w", cfg.compression, cerr)
		}
	}()

	sink := encoder.NewXMLSink(packer, cfg.writerOptions()...)

	if err = EncodeTo(sink, doc); err != nil {
		return err
	}

	if err = sink.Close(); err != nil {
		return fmt.Errorf("could not flush markup: %w", err)
	}

	slog.Debug("encoded document",
		"roads", len(doc.Roads),
		"junctions", len(doc.Junctions),
		"compression", cfg.compression)

	return nil
}

// EncodeFile writes doc to the file at path, replacing its content.
func EncodeFile(path string, doc *model.Document, opts ...EncoderOption) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Encode(out, doc, opts...)
}
