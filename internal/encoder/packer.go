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
	"errors"
	"fmt"
	"io"

	"m4o.io/xodr/internal/encoder/packers"
	"m4o.io/xodr/internal/lexical"
)

// ErrUnknownCompression is returned for an unsupported compression name or
// value.
var ErrUnknownCompression = errors.New("unknown compression type")

// Compression selects how encoded markup is compressed on output.
type Compression int

const (
	RAW Compression = iota
	GZIP
	ZLIB
	LZ4
	XZ
	ZSTD
)

var compressionNames = [...]string{"raw", "gzip", "zlib", "lz4", "xz", "zstd"}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}

	return compressionNames[c]
}

// ParseCompression converts a name such as "zstd" into a Compression.
func ParseCompression(s string) (Compression, error) {
	for i, name := range compressionNames {
		if lexical.EqualFold(s, name) {
			return Compression(i), nil
		}
	}

	return RAW, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// NewPacker wraps w so that everything written is compressed with c.
// Closing the packer flushes the compressed stream; w itself stays open.
func NewPacker(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case RAW:
		return packers.NewRawPacker(w), nil
	case GZIP:
		return packers.NewGzipPacker(w), nil
	case ZLIB:
		return packers.NewZlibPacker(w), nil
	case LZ4:
		return packers.NewLz4Packer(w), nil
	case XZ:
		return packers.NewXzPacker(w)
	case ZSTD:
		return packers.NewZstdPacker(w)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}
