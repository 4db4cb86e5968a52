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
	"io"
	"runtime"

	"golang.org/x/net/html/charset"

	"m4o.io/xodr/internal/decoder"
)

// DefaultMaxDepth is the default limit on element nesting.
const DefaultMaxDepth = decoder.DefaultMaxDepth

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// decoderOptions provides optional configuration parameters for decoding.
type decoderOptions struct {
	maxDepth      int                                                 // limit on element nesting
	charsetReader func(label string, in io.Reader) (io.Reader, error) // converts non UTF-8 input
	nCPU          uint16                                              // the number of CPUs to use when decoding many files
	validate      bool                                                // run semantic validation after decoding
}

// DecoderOption configures how we set up the decoder.
type DecoderOption func(*decoderOptions)

// WithMaxDepth lets you bound how deeply elements, known or unknown, may
// nest.  Deeper input fails with ErrMaxDepthExceeded.
func WithMaxDepth(n int) DecoderOption {
	return func(o *decoderOptions) {
		o.maxDepth = n
	}
}

// WithCharsetReader lets you replace the converter used for input that
// declares an encoding other than UTF-8.
func WithCharsetReader(f func(label string, in io.Reader) (io.Reader, error)) DecoderOption {
	return func(o *decoderOptions) {
		o.charsetReader = f
	}
}

// WithNCpus lets you set the number of CPUs to use when decoding many files.
func WithNCpus(n uint16) DecoderOption {
	return func(o *decoderOptions) {
		o.nCPU = n
	}
}

// WithValidation makes decoding fail with Issues if the decoded document
// breaks a semantic rule checked by the validate package.
func WithValidation() DecoderOption {
	return func(o *decoderOptions) {
		o.validate = true
	}
}

// defaultDecoderConfig provides a default configuration for decoders.
var defaultDecoderConfig = decoderOptions{
	maxDepth:      DefaultMaxDepth,
	charsetReader: charset.NewReaderLabel,
	nCPU:          DefaultNCpu(),
}

func newDecoderConfig(opts []DecoderOption) decoderOptions {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
