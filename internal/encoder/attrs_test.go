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
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type token string

func (t token) MarshalText() ([]byte, error) {
	if t == "" {
		return nil, errors.New("empty token")
	}

	return []byte(t), nil
}

func TestFormatFloat(t *testing.T) {
	testCases := []struct {
		v        float64
		expected string
	}{
		{0, "0e+00"},
		{1.5, "1.5e+00"},
		{-2e-7, "-2e-07"},
		{100, "1e+02"},
		{0.1, "1e-01"},
		{math.Inf(1), "+Inf"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatFloat(tc.v))
		})
	}
}

func TestFormatFloatIsLossless(t *testing.T) {
	for _, v := range []float64{math.Pi, 1.0 / 3, 123456.789012345, math.SmallestNonzeroFloat64, math.MaxFloat64} {
		back, err := strconv.ParseFloat(FormatFloat(v), 64)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

func TestAttrBuilder(t *testing.T) {
	f := 0.25
	yes := true
	n := int32(-3)
	tok := token("arc")

	var (
		noFloat *float64
		noBool  *bool
		noInt   *int32
		noTok   *token
		noStr   *string
	)

	b := &AttrBuilder{}
	b.String("s", "x").
		OptString("os", noStr).
		Float("f", 1).
		OptFloat("of", &f).
		OptFloat("nf", noFloat).
		Bool("b", false).
		OptBool("ob", &yes).
		OptBool("nb", noBool).
		Text("t", tok)
	Int(b, "i", uint16(7))
	OptInt(b, "oi", &n)
	OptInt(b, "ni", noInt)
	OptText(b, "ot", &tok)
	OptText(b, "nt", noTok)

	attrs, err := b.Attrs()
	require.NoError(t, err)
	assert.Equal(t, []Attr{
		{"s", "x"},
		{"f", "1e+00"},
		{"of", "2.5e-01"},
		{"b", "false"},
		{"ob", "true"},
		{"t", "arc"},
		{"i", "7"},
		{"oi", "-3"},
		{"ot", "arc"},
	}, attrs)
}

func TestAttrBuilderKeepsFirstError(t *testing.T) {
	b := &AttrBuilder{}
	b.Text("first", token("")).Text("second", token("")).String("after", "v")

	called := false
	err := b.Visit(func([]Attr) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), `attribute "first"`)
	assert.NotContains(t, err.Error(), "second")
}
