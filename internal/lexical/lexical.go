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


// Package lexical holds the token rules shared by the decoder, the model
// and the encoder options.
package lexical

import (
	"strconv"
	"strings"
)

// ParseFloat converts a decimal floating point number.  It accepts what
// strconv.ParseFloat accepts except Go literal extensions: hexadecimal
// mantissas and digit separators are rejected with strconv.ErrSyntax.
func ParseFloat(s string) (float64, error) {
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}

	if strings.ContainsRune(s, '_') || strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	return strconv.ParseFloat(s, 64)
}

// EqualFold reports whether s and t are equal under ASCII case folding.
// Unlike strings.EqualFold, no other Unicode letters fold, so "ſ" and the
// Kelvin sign do not match "s" and "k".
func EqualFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if lower(s[i]) != lower(t[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}
