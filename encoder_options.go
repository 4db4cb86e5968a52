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
	"github.com/shabbyrobe/xmlwriter"

	"m4o.io/xodr/internal/encoder"
)

// Compression selects how encoded markup is compressed.
type Compression = encoder.Compression

// Supported compressions.
const (
	RAW  = encoder.RAW
	GZIP = encoder.GZIP
	ZLIB = encoder.ZLIB
	LZ4  = encoder.LZ4
	XZ   = encoder.XZ
	ZSTD = encoder.ZSTD

	// DefaultCompression writes plain markup.
	DefaultCompression = RAW
)

// ParseCompression converts a name such as "zstd" into a Compression.
func ParseCompression(s string) (Compression, error) {
	return encoder.ParseCompression(s)
}

// encoderOptions provides optional configuration parameters for encoding.
type encoderOptions struct {
	compression Compression
	indent      bool
	indentStr   string
}

// EncoderOption configures how we set up the encoder.
type EncoderOption func(*encoderOptions)

// WithCompression specifies the compression algorithm to use when encoding.
// The default is RAW.
func WithCompression(compression Compression) EncoderOption {
	return func(o *encoderOptions) {
		o.compression = compression
	}
}

// WithIndent puts every element on its own line, indented by nesting depth.
func WithIndent() EncoderOption {
	return func(o *encoderOptions) {
		o.indent = true
	}
}

// WithIndentString sets the string repeated once per nesting level when
// indenting.  It implies WithIndent.
func WithIndentString(s string) EncoderOption {
	return func(o *encoderOptions) {
		o.indent = true
		o.indentStr = s
	}
}

// defaultEncoderConfig provides a default configuration for encoders.
var defaultEncoderConfig = encoderOptions{
	compression: DefaultCompression,
}

func (o *encoderOptions) writerOptions() []xmlwriter.Option {
	switch {
	case o.indentStr != "":
		return []xmlwriter.Option{xmlwriter.WithIndentString(o.indentStr)}
	case o.indent:
		return []xmlwriter.Option{xmlwriter.WithIndent()}
	default:
		return nil
	}
}
