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


package model

import (
	"fmt"
	"strings"

	"m4o.io/xodr/internal/lexical"
)

// UnknownTokenError reports a token that is not part of a closed
// enumeration.
type UnknownTokenError struct {
	Kind  string
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Token)
}

// enum maps the variants of a closed enumeration, numbered from zero, to
// their canonical tokens.
type enum[T ~int] struct {
	kind   string
	tokens []string
}

func newEnum[T ~int](kind string, tokens ...string) enum[T] {
	return enum[T]{kind: kind, tokens: tokens}
}

func (e enum[T]) valid(v T) bool {
	return v >= 0 && int(v) < len(e.tokens)
}

func (e enum[T]) String(v T) string {
	if !e.valid(v) {
		return fmt.Sprintf("%s(%d)", e.kind, int(v))
	}

	return e.tokens[v]
}

func (e enum[T]) Parse(s string) (T, error) {
	for i, token := range e.tokens {
		if lexical.EqualFold(s, token) {
			return T(i), nil
		}
	}

	return 0, &UnknownTokenError{Kind: e.kind, Token: s}
}

func (e enum[T]) marshal(v T) ([]byte, error) {
	if !e.valid(v) {
		return nil, &UnknownTokenError{Kind: e.kind, Token: e.String(v)}
	}

	return []byte(e.tokens[v]), nil
}

func (e enum[T]) unmarshal(dst *T, b []byte) error {
	v, err := e.Parse(string(b))
	if err != nil {
		return err
	}

	*dst = v

	return nil
}

func (e enum[T]) expected() string {
	quoted := make([]string, len(e.tokens))
	for i, t := range e.tokens {
		quoted[i] = fmt.Sprintf("%q", t)
	}

	return e.kind + " (one of " + strings.Join(quoted, ", ") + ")"
}

// Tokens returns the canonical tokens in variant order.
func (e enum[T]) Tokens() []string {
	return append([]string(nil), e.tokens...)
}
