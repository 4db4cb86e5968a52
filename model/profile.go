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
	"m4o.io/xodr/internal/decoder"
	"m4o.io/xodr/internal/encoder"
)

// Cubic holds the coefficients of a + b*ds + c*ds² + d*ds³.
type Cubic struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// Eval evaluates the polynomial at ds.
func (c Cubic) Eval(ds float64) float64 {
	return c.A + ds*(c.B+ds*(c.C+ds*c.D))
}

func readCubic(r *decoder.ReadContext, na, nb, nc, nd string) (cu Cubic, err error) {
	if cu.A, err = r.Float(na); err != nil {
		return cu, err
	}
	if cu.B, err = r.Float(nb); err != nil {
		return cu, err
	}
	if cu.C, err = r.Float(nc); err != nil {
		return cu, err
	}
	if cu.D, err = r.Float(nd); err != nil {
		return cu, err
	}

	return cu, nil
}

// readPiece reads the a, b, c and d coefficients of a leaf polynomial
// element.  On error the returned Cubic is zero.
func readPiece(r *decoder.ReadContext) (Cubic, error) {
	cu, err := readCubic(r, "a", "b", "c", "d")
	if err != nil {
		return Cubic{}, err
	}

	return decoder.ExpectNoChildren(r, cu)
}

func (c Cubic) attrs(b *encoder.AttrBuilder, na, nb, nc, nd string) {
	b.Float(na, c.A).
		Float(nb, c.B).
		Float(nc, c.C).
		Float(nd, c.D)
}

// ElevationProfile describes the height of the reference line along s.
type ElevationProfile struct {
	Elevations []Elevation `json:"elevations,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*ElevationProfile)(nil)
	_ encoder.Element     = (*ElevationProfile)(nil)
)

func (e *ElevationProfile) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Repeated("elevation", decoder.Append(&e.Elevations)),
	)
}

func (e *ElevationProfile) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (e *ElevationProfile) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("elevation", e.Elevations))
}

// Elevation is one piece of the elevation profile, valid from S up to the
// start of the next piece.  Pieces are kept in document order.
type Elevation struct {
	Cubic
	S Length `json:"s"`
}

var (
	_ decoder.Unmarshaler = (*Elevation)(nil)
	_ encoder.Element     = (*Elevation)(nil)
)

func (e *Elevation) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if e.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}

	e.Cubic, err = readPiece(r)

	return err
}

func (e *Elevation) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	e.Cubic.attrs(&b, "a", "b", "c", "d")
	b.Text("s", e.S)

	return b.Visit(visit)
}

func (e *Elevation) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// LateralProfile describes the cross section of a road: the roll angle of
// the road surface and its shape across t.
type LateralProfile struct {
	Superelevations []Superelevation `json:"superelevations,omitempty"`
	Shapes          []Shape          `json:"shapes,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*LateralProfile)(nil)
	_ encoder.Element     = (*LateralProfile)(nil)
)

func (l *LateralProfile) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Repeated("superelevation", decoder.Append(&l.Superelevations)),
		decoder.Repeated("shape", decoder.Append(&l.Shapes)),
	)
}

func (l *LateralProfile) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (l *LateralProfile) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Each("superelevation", l.Superelevations),
		encoder.Each("shape", l.Shapes),
	)
}

// Superelevation is one piece of the roll angle of the road, in radians,
// along s.
type Superelevation struct {
	Cubic
	S Length `json:"s"`
}

var (
	_ decoder.Unmarshaler = (*Superelevation)(nil)
	_ encoder.Element     = (*Superelevation)(nil)
)

func (s *Superelevation) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if s.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}

	s.Cubic, err = readPiece(r)

	return err
}

func (s *Superelevation) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	s.Cubic.attrs(&b, "a", "b", "c", "d")
	b.Text("s", s.S)

	return b.Visit(visit)
}

func (s *Superelevation) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Shape is one piece of the height of the road surface across t, starting
// at S on the reference line and T in the lateral direction.
type Shape struct {
	Cubic
	S Length `json:"s"`
	T Length `json:"t"`
}

var (
	_ decoder.Unmarshaler = (*Shape)(nil)
	_ encoder.Element     = (*Shape)(nil)
)

func (s *Shape) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if s.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}
	if s.T, err = decoder.Text[Length](r, "t"); err != nil {
		return err
	}

	s.Cubic, err = readPiece(r)

	return err
}

func (s *Shape) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	s.Cubic.attrs(&b, "a", "b", "c", "d")
	b.Text("s", s.S).
		Text("t", s.T)

	return b.Visit(visit)
}

func (s *Shape) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}
