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
	"math"
	"strconv"

	"github.com/golang/geo/s1"

	"m4o.io/xodr/internal/encoder"
	"m4o.io/xodr/internal/lexical"
)

// Epsilon is a precision used when comparing lengths and angles.
type Epsilon float64

const (
	E3 Epsilon = 1e-3
	E6 Epsilon = 1e-6
	E9 Epsilon = 1e-9

	Half = 0.5
)

// Length is a distance in meters.  In markup it is a bare number without a
// unit suffix.
type Length float64

// Length units.
const (
	Millimeter Length = 1e-3
	Centimeter Length = 1e-2
	Meter      Length = 1
	Kilometer  Length = 1e3
)

// Meters returns l as a plain number of meters.
func (l Length) Meters() float64 { return float64(l) }

// EqualWithin checks if two lengths are within a specific epsilon.
func (l Length) EqualWithin(o Length, eps Epsilon) bool {
	return round(float64(l)/float64(eps))-round(float64(o)/float64(eps)) == 0
}

func (l Length) String() string {
	return ftoa(float64(l)) + "m"
}

// MarshalText renders l in the lossless scientific notation used for all
// numeric attributes.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(encoder.FormatFloat(float64(l))), nil
}

// UnmarshalText parses a bare number of meters.
func (l *Length) UnmarshalText(b []byte) error {
	v, err := ParseLength(string(b))
	if err != nil {
		return err
	}

	*l = v

	return nil
}

// Expected names the accepted form of a Length in diagnostics.
func (*Length) Expected() string { return "length in meters" }

// ParseLength converts a string of meters into a Length.
func ParseLength(s string) (Length, error) {
	v, err := lexical.ParseFloat(s)
	if err != nil {
		return 0, err
	}

	return Length(v), nil
}

// Angle is a 1D angle in radians, such as a heading measured from the
// x-axis of the inertial system.
type Angle s1.Angle

// Radians returns a as a plain number of radians.
func (a Angle) Radians() float64 { return s1.Angle(a).Radians() }

// Degrees returns a in degrees.
func (a Angle) Degrees() float64 { return s1.Angle(a).Degrees() }

// Normalized returns the equivalent angle in the range (-π, π].
func (a Angle) Normalized() Angle { return Angle(s1.Angle(a).Normalized()) }

// EqualWithin checks if two angles are within a specific epsilon.
func (a Angle) EqualWithin(o Angle, eps Epsilon) bool {
	return round(float64(a)/float64(eps))-round(float64(o)/float64(eps)) == 0
}

func (a Angle) String() string {
	return s1.Angle(a).String()
}

// MarshalText renders a as radians in lossless scientific notation.
func (a Angle) MarshalText() ([]byte, error) {
	return []byte(encoder.FormatFloat(float64(a))), nil
}

// UnmarshalText parses a bare number of radians.
func (a *Angle) UnmarshalText(b []byte) error {
	v, err := lexical.ParseFloat(string(b))
	if err != nil {
		return err
	}

	*a = Angle(v)

	return nil
}

// Expected names the accepted form of an Angle in diagnostics.
func (*Angle) Expected() string { return "angle in radians" }

// round returns the value rounded to nearest as an int64.
func round(val float64) int64 {
	if val < 0 {
		return int64(val - Half)
	}

	return int64(val + Half)
}

// ftoa formats a float for humans, without trailing zeros.
func ftoa(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprint(v)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
