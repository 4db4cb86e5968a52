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
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/destel/rill"

	"m4o.io/xodr/model"
)

// DecodeFile reads the document stored at path.
func DecodeFile(path string, opts ...DecoderOption) (*model.Document, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer in.Close()

	doc, err := Decode(in, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// DecodeFiles reads the documents stored at paths, using WithNCpus
// goroutines.  Documents are returned in the order of paths.  The first
// failure stops the batch; files not yet started are skipped once ctx is
// done.
func DecodeFiles(ctx context.Context, paths []string, opts ...DecoderOption) ([]*model.Document, error) {
	cfg := newDecoderConfig(opts)

	in := rill.FromSlice(paths, nil)
	out := rill.OrderedMap(in, int(max(cfg.nCPU, 1)), func(path string) (*model.Document, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := DecodeFile(path, opts...)
		if err != nil {
			slog.Error("error decoding file", "path", path, "error", err)

			return nil, err
		}

		return doc, nil
	})

	return rill.ToSlice(out)
}
