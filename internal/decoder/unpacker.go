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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

const sniffSize = 6

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicXz   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicLz4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Unpack inspects the leading bytes of r.  If they carry the magic number of
// a supported compression format, the returned reader yields the
// uncompressed stream; otherwise it yields r unchanged.  The name of the
// detected format ("raw" for none) is returned as well.
func Unpack(r io.Reader) (io.ReadCloser, string, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", err
	}

	var (
		rdr  io.ReadCloser
		name string
	)

	switch {
	case bytes.HasPrefix(head, magicGzip):
		name = "gzip"
		rdr, err = gzip.NewReader(br)
	case bytes.HasPrefix(head, magicZstd):
		name = "zstd"

		var d *zstd.Decoder
		if d, err = zstd.NewReader(br); err == nil {
			rdr = d.IOReadCloser()
		}
	case bytes.HasPrefix(head, magicXz):
		name = "xz"

		var x *xz.Reader
		if x, err = xz.NewReader(br); err == nil {
			rdr = io.NopCloser(x)
		}
	case bytes.HasPrefix(head, magicLz4):
		name = "lz4"
		rdr = io.NopCloser(lz4.NewReader(br))
	case isZlib(head):
		name = "zlib"
		rdr, err = zlib.NewReader(br)
	default:
		return io.NopCloser(br), "raw", nil
	}

	if err != nil {
		return nil, name, fmt.Errorf("unpacker %s error: %w", name, err)
	}

	return rdr, name, nil
}

// isZlib checks the two byte zlib header: deflate with a 32K window and a
// valid check sum.
func isZlib(head []byte) bool {
	if len(head) < 2 {
		return false
	}

	cmf, flg := head[0], head[1]

	return cmf == 0x78 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}
