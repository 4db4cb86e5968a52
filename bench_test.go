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
	"bytes"
	"os"
	"runtime/trace"
	"strconv"
	"testing"
)

func BenchmarkDecodeSample(b *testing.B) {
	data, err := os.ReadFile("testdata/sample.xodr")
	if err != nil {
		b.Fatalf("Error reading file: %v", err)
	}

	t, err := strconv.ParseBool(os.Getenv("XODR_TRACE"))
	if err == nil && t {
		f, e := os.Create("trace.out")
		if e != nil {
			b.Errorf("Error opening trace file: %v", e)
		} else {
			defer f.Close()
			_ = trace.Start(f)
			defer trace.Stop()
		}
	}

	b.SetBytes(int64(len(data)))

	for n := 0; n < b.N; n++ {
		if _, err := Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeSample(b *testing.B) {
	doc, err := DecodeFile("testdata/sample.xodr")
	if err != nil {
		b.Fatal(err)
	}

	var buf bytes.Buffer

	for n := 0; n < b.N; n++ {
		buf.Reset()

		if err := Encode(&buf, doc); err != nil {
			b.Fatal(err)
		}
	}
}
