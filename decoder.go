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


// Package xodr reads and writes road network descriptions in the
// OpenDRIVE markup format.
//
// Decoding turns markup into a typed model.Document and fails with the
// first structural error found.  Encoding writes a model.Document back out
// so that decoding the result yields an equal document.
package xodr

import (
	"encoding/xml"
	"io"
	"log/slog"

	"m4o.io/xodr/internal/decoder"
	"m4o.io/xodr/model"
	"m4o.io/xodr/validate"
)

// Decode reads a complete document from r.  Input compressed with gzip,
// zlib, zstd, lz4 or xz is detected and unpacked.
func Decode(r io.Reader, opts ...DecoderOption) (*model.Document, error) {
	cfg := newDecoderConfig(opts)

	rdr, format, err := decoder.Unpack(r)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := rdr.Close(); err != nil {
			slog.Error("error closing unpacker", "compression", format, "error", err)
		}
	}()

	d := xml.NewDecoder(rdr)
	d.CharsetReader = cfg.charsetReader

	slog.Debug("decoding document", "compression", format)

	return decode(d, &cfg)
}

// DecodeTokens reads a complete document from a stream of markup tokens.
func DecodeTokens(tokens xml.TokenReader, opts ...DecoderOption) (*model.Document, error) {
	cfg := newDecoderConfig(opts)

	return decode(tokens, &cfg)
}

func decode(tokens xml.TokenReader, cfg *decoderOptions) (*model.Document, error) {
	c := decoder.NewCursor(tokens, cfg.maxDepth)

	doc, err := decoder.Root[model.Document](c, model.RootElement)
	if err != nil {
		return nil, err
	}

	if cfg.validate {
		if issues := validate.Document(doc); len(issues) > 0 {
			return nil, issues
		}
	}

	slog.Debug("decoded document",
		"roads", len(doc.Roads),
		"junctions", len(doc.Junctions))

	return doc, nil
}
