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


package lexical

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	testCases := []struct {
		in       string
		expected float64
	}{
		{"0", 0},
		{"1.5e+00", 1.5},
		{"-2e-07", -2e-7},
		{"+3.25", 3.25},
		{".5", 0.5},
		{"1E3", 1000},
		{"+Inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
		{"0.0e+00", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseFloat(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestParseFloatRejectsGoLiterals(t *testing.T) {
	for _, in := range []string{"0x1p3", "0X1P3", "-0x1p-2", "+0x10p0", "0x_1p3", "1_0", "1_000.5", "", "1,5", "ten", "1.5m"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFloat(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, strconv.ErrSyntax), "%v", err)
		})
	}

	v, err := ParseFloat("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEqualFold(t *testing.T) {
	testCases := []struct {
		s, t     string
		expected bool
	}{
		{"RHT", "rht", true},
		{"arcLength", "ARCLENGTH", true},
		{"start", "start", true},
		{"start", "star", false},
		{"ſtart", "start", false},
		{"truc\u212A", "truck", false},
		{"\u212Aelvin", "kelvin", false},
		{"é", "É", false},
		{"", "", true},
		{"+", "-", false},
		{"[", "{", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, EqualFold(tc.s, tc.t), "%q vs %q", tc.s, tc.t)
	}
}
