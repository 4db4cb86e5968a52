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
	"compress/gzip"
	"encoding/xml"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/xodr/internal/encoder"
	"m4o.io/xodr/model"
)

func minimalDocument() *model.Document {
	return &model.Document{
		Header: model.Header{RevMajor: 1, RevMinor: 7},
		Roads: []model.Road{{
			ID:       "1",
			Junction: model.NoJunction,
			Length:   1.5,
			Name:     ptr("A & B"),
			PlanView: model.PlanView{Geometries: []model.Geometry{
				{Length: 1.5, Shape: &model.Poly3{Cubic: model.Cubic{A: 0.1, D: -2e-7}}},
			}},
			Lanes: model.Lanes{LaneSections: []model.LaneSection{{
				Center: model.LaneGroup{Lanes: []model.Lane{{ID: 0, Type: model.LaneTypeNone}}},
			}}},
		}},
	}
}

func encodeString(t *testing.T, doc *model.Document, opts ...EncoderOption) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc, opts...))

	return buf.String()
}

func TestEncodeRoundTripSample(t *testing.T) {
	doc, err := DecodeFile("testdata/sample.xodr")
	require.NoError(t, err)

	out := encodeString(t, doc)

	again, err := Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, doc, again)

	// a second pass is byte for byte stable
	assert.Equal(t, out, encodeString(t, again))
}

func TestEncodeRoundTripTokens(t *testing.T) {
	doc, err := DecodeFile("testdata/sample.xodr")
	require.NoError(t, err)

	var buf TokenBuffer
	require.NoError(t, EncodeTo(&buf, doc))

	start, ok := buf.Tokens()[0].(xml.StartElement)
	require.True(t, ok)
	assert.Equal(t, model.RootElement, start.Name.Local)

	again, err := DecodeTokens(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestEncodeNumbers(t *testing.T) {
	out := encodeString(t, minimalDocument())

	assert.Contains(t, out, `<road id="1" junction="-1" length="1.5e+00" name="A &amp; B">`)
	assert.Contains(t, out, `<geometry s="0e+00" x="0e+00" y="0e+00" hdg="0e+00" length="1.5e+00">`)
	assert.Contains(t, out, `<poly3 a="1e-01" b="0e+00" c="0e+00" d="-2e-07"`)
	assert.Contains(t, out, `<header revMajor="1" revMinor="7"`)
	assert.NotContains(t, out, `rule=`)
}

func TestEncodeFloatsAreBitExact(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"negative zero", math.Copysign(0, -1)},
		{"smallest subnormal", math.SmallestNonzeroFloat64},
		{"negative subnormal", -math.SmallestNonzeroFloat64 * 3},
		{"largest subnormal", math.Float64frombits(0x000fffffffffffff)},
		{"smallest normal", 0x1p-1022},
		{"max", math.MaxFloat64},
		{"negative max", -math.MaxFloat64},
		{"one third", 1.0 / 3},
		{"point one plus point two", 0.1 + 0.2},
		{"pi", math.Pi},
		{"next after one", math.Nextafter(1, 2)},
		{"negative large", -123456789.98765432},
	}

	bits := func(v float64) uint64 { return math.Float64bits(v) }

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.value

			doc := minimalDocument()
			rd := &doc.Roads[0]
			rd.Length = model.Length(v)
			rd.PlanView.Geometries[0].S = model.Length(v)
			rd.PlanView.Geometries[0].Hdg = model.Angle(v)
			rd.PlanView.Geometries[0].Shape = &model.Poly3{Cubic: model.Cubic{A: v, B: -v, C: v / 2, D: v}}
			rd.ElevationProfile = &model.ElevationProfile{Elevations: []model.Elevation{
				{S: model.Length(v), Cubic: model.Cubic{A: v, B: v, C: v, D: -v}},
			}}

			again, err := Decode(strings.NewReader(encodeString(t, doc)))
			require.NoError(t, err)

			got := &again.Roads[0]
			g := got.PlanView.Geometries[0]
			poly, ok := g.Shape.(*model.Poly3)
			require.True(t, ok)
			require.NotNil(t, got.ElevationProfile)
			el := got.ElevationProfile.Elevations[0]

			assert.Equal(t, bits(v), bits(float64(got.Length)), "length")
			assert.Equal(t, bits(v), bits(float64(g.S)), "s")
			assert.Equal(t, bits(v), bits(float64(g.Hdg)), "hdg")
			assert.Equal(t, bits(v), bits(poly.A), "a")
			assert.Equal(t, bits(-v), bits(poly.B), "b")
			assert.Equal(t, bits(v/2), bits(poly.C), "c")
			assert.Equal(t, bits(v), bits(el.S.Meters()), "elevation s")
			assert.Equal(t, bits(-v), bits(el.D), "elevation d")
		})
	}
}

func TestEncodeCanonicalTokens(t *testing.T) {
	in := document(road(roadAttrs+` rule="lht"`, `<link><predecessor elementId="2" elementType="ROAD" contactPoint="End"/></link>`+
		planViewXML+lanesXML))

	doc, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	out := encodeString(t, doc)
	assert.Contains(t, out, `rule="LHT"`)
	assert.Contains(t, out, `<predecessor contactPoint="end" elementId="2" elementType="road"`)
}

func TestEncodeIndent(t *testing.T) {
	flat := encodeString(t, minimalDocument())
	indented := encodeString(t, minimalDocument(), WithIndentString("\t"))

	assert.Greater(t, strings.Count(indented, "\n"), strings.Count(flat, "\n"))
	assert.Contains(t, indented, "\t<road")

	a, err := Decode(strings.NewReader(flat))
	require.NoError(t, err)
	b, err := Decode(strings.NewReader(indented))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeCompression(t *testing.T) {
	doc := minimalDocument()

	for _, c := range []Compression{RAW, GZIP, ZLIB, LZ4, XZ, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, WithCompression(c)))

			if c != RAW {
				assert.NotEqual(t, byte('<'), buf.Bytes()[0])
			}

			again, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, doc, again)
		})
	}
}

func TestEncodeUnknownCompression(t *testing.T) {
	err := Encode(&bytes.Buffer{}, minimalDocument(), WithCompression(Compression(42)))
	assert.ErrorIs(t, err, ErrUnknownCompression)

	_, err = ParseCompression("brotli")
	assert.ErrorIs(t, err, ErrUnknownCompression)

	c, err := ParseCompression("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, ZSTD, c)
}

func TestEncodeErrors(t *testing.T) {
	t.Run("missing shape", func(t *testing.T) {
		doc := minimalDocument()
		doc.Roads[0].PlanView.Geometries[0].Shape = nil

		err := Encode(&bytes.Buffer{}, doc)
		assert.ErrorIs(t, err, model.ErrMissingShape)
	})

	t.Run("compressed output is terminated", func(t *testing.T) {
		doc := minimalDocument()
		doc.Roads[0].PlanView.Geometries[0].Shape = nil

		var buf bytes.Buffer
		err := Encode(&buf, doc, WithCompression(GZIP))
		require.ErrorIs(t, err, model.ErrMissingShape)

		zr, err := gzip.NewReader(&buf)
		require.NoError(t, err)
		_, err = io.ReadAll(zr)
		assert.NoError(t, err)
	})

	t.Run("invalid enumeration", func(t *testing.T) {
		doc := minimalDocument()
		doc.Roads[0].Rule = ptr(model.Rule(9))

		err := Encode(&bytes.Buffer{}, doc)

		var unknown *model.UnknownTokenError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "rule", unknown.Kind)
	})
}

type chain struct {
	next *chain
}

func (c *chain) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (c *chain) VisitChildren(visit encoder.ChildVisitor) error {
	if c.next == nil {
		return nil
	}

	return visit("link", c.next)
}

func TestEncodeMaxDepthSentinel(t *testing.T) {
	root := &chain{}
	for n, i := root, 0; i < DefaultMaxDepth; i++ {
		n.next = &chain{}
		n = n.next
	}

	var tokens TokenBuffer
	err := encoder.Write(&tokens, "link", root)
	assert.ErrorIs(t, err, ErrMaxDepthExceeded)
}
