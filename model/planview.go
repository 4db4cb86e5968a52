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
	"errors"

	"m4o.io/xodr/internal/decoder"
	"m4o.io/xodr/internal/encoder"
)

// ErrMissingShape is returned when a Geometry without a shape is written.
var ErrMissingShape = errors.New("geometry has no shape")

// PlanView is the reference line of a road as a sequence of geometry
// primitives.
type PlanView struct {
	Geometries []Geometry `json:"geometries"`
}

var (
	_ decoder.Unmarshaler = (*PlanView)(nil)
	_ encoder.Element     = (*PlanView)(nil)
)

func (p *PlanView) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.OneOrMore("geometry", decoder.Append(&p.Geometries)),
	)
}

func (p *PlanView) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (p *PlanView) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("geometry", p.Geometries))
}

// Length sums the lengths of all geometry primitives.
func (p *PlanView) Length() Length {
	var total Length
	for i := range p.Geometries {
		total += p.Geometries[i].Length
	}

	return total
}

// Bounds returns the box spanned by the start points of all primitives, or
// nil for an empty plan view.
func (p *PlanView) Bounds() *BoundingBox {
	if len(p.Geometries) == 0 {
		return nil
	}

	b := InitialBoundingBox()
	for i := range p.Geometries {
		b.ExpandWithXY(p.Geometries[i].X, p.Geometries[i].Y)
	}

	return b
}

// Geometry is one primitive of a reference line, starting at S on the
// reference line and at (X, Y) heading Hdg in the inertial system.
type Geometry struct {
	S      Length        `json:"s"`
	X      Length        `json:"x"`
	Y      Length        `json:"y"`
	Hdg    Angle         `json:"hdg"`
	Length Length        `json:"length"`
	Shape  GeometryShape `json:"shape"`
}

var (
	_ decoder.Unmarshaler = (*Geometry)(nil)
	_ encoder.Element     = (*Geometry)(nil)
)

// End returns the s-coordinate at which the primitive ends.
func (g *Geometry) End() Length {
	return g.S + g.Length
}

func (g *Geometry) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if g.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}
	if g.X, err = decoder.Text[Length](r, "x"); err != nil {
		return err
	}
	if g.Y, err = decoder.Text[Length](r, "y"); err != nil {
		return err
	}
	if g.Hdg, err = decoder.Text[Angle](r, "hdg"); err != nil {
		return err
	}
	if g.Length, err = decoder.Text[Length](r, "length"); err != nil {
		return err
	}

	return r.Children(
		decoder.OneOf(decoder.ExactlyOnce,
			decoder.Alt(ShapeLine, shapeInto[Line](&g.Shape)),
			decoder.Alt(ShapeArc, shapeInto[Arc](&g.Shape)),
			decoder.Alt(ShapeSpiral, shapeInto[Spiral](&g.Shape)),
			decoder.Alt(ShapePoly3, shapeInto[Poly3](&g.Shape)),
			decoder.Alt(ShapeParamPoly3, shapeInto[ParamPoly3](&g.Shape)),
		),
	)
}

func (g *Geometry) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.Text("s", g.S).
		Text("x", g.X).
		Text("y", g.Y).
		Text("hdg", g.Hdg).
		Text("length", g.Length)

	return b.Visit(visit)
}

func (g *Geometry) VisitChildren(visit encoder.ChildVisitor) error {
	if g.Shape == nil {
		return ErrMissingShape
	}

	return visit(g.Shape.Kind(), g.Shape)
}

// Element names of the geometry shapes.
const (
	ShapeLine       = "line"
	ShapeArc        = "arc"
	ShapeSpiral     = "spiral"
	ShapePoly3      = "poly3"
	ShapeParamPoly3 = "paramPoly3"
)

// GeometryShape is the curve of a Geometry.  It is implemented by *Line,
// *Arc, *Spiral, *Poly3 and *ParamPoly3 only.
type GeometryShape interface {
	encoder.Element

	// Kind returns the element name of the shape.
	Kind() string

	shape()
}

func shapeInto[T any, PT interface {
	*T
	GeometryShape
	decoder.Unmarshaler
}](dst *GeometryShape) func(r *decoder.ReadContext) error {
	return func(r *decoder.ReadContext) error {
		v := PT(new(T))
		if err := v.UnmarshalXODR(r); err != nil {
			return err
		}

		*dst = v

		return nil
	}
}

// Line is a straight line.
type Line struct{}

func (*Line) Kind() string { return ShapeLine }
func (*Line) shape()       {}

func (l *Line) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.NoChildren()
}

func (l *Line) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (l *Line) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Arc is a curve of constant curvature, in 1/m.
type Arc struct {
	Curvature float64 `json:"curvature"`
}

func (*Arc) Kind() string { return ShapeArc }
func (*Arc) shape()       {}

func (a *Arc) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if a.Curvature, err = r.Float("curvature"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (a *Arc) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.Float("curvature", a.Curvature)

	return b.Visit(visit)
}

func (a *Arc) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Spiral is a clothoid whose curvature changes linearly from CurvStart to
// CurvEnd.
type Spiral struct {
	CurvStart float64 `json:"curv_start"`
	CurvEnd   float64 `json:"curv_end"`
}

func (*Spiral) Kind() string { return ShapeSpiral }
func (*Spiral) shape()       {}

func (sp *Spiral) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if sp.CurvStart, err = r.Float("curvStart"); err != nil {
		return err
	}
	if sp.CurvEnd, err = r.Float("curvEnd"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (sp *Spiral) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.Float("curvStart", sp.CurvStart).
		Float("curvEnd", sp.CurvEnd)

	return b.Visit(visit)
}

func (sp *Spiral) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Poly3 is a cubic polynomial v(u) in the local coordinates of the
// primitive.
type Poly3 struct {
	Cubic
}

func (*Poly3) Kind() string { return ShapePoly3 }
func (*Poly3) shape()       {}

func (p *Poly3) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	p.Cubic, err = readPiece(r)

	return err
}

func (p *Poly3) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	p.Cubic.attrs(&b, "a", "b", "c", "d")

	return b.Visit(visit)
}

func (p *Poly3) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// ParamPoly3 is a pair of cubic polynomials u(p) and v(p).  PRange decides
// whether p runs over the arc length or over [0, 1].
type ParamPoly3 struct {
	U      Cubic            `json:"u"`
	V      Cubic            `json:"v"`
	PRange *ParamPoly3Range `json:"p_range,omitempty"`
}

func (*ParamPoly3) Kind() string { return ShapeParamPoly3 }
func (*ParamPoly3) shape()       {}

// Range returns the parameter range, which is normalized when absent.
func (p *ParamPoly3) Range() ParamPoly3Range {
	if p.PRange == nil {
		return RangeNormalized
	}

	return *p.PRange
}

func (p *ParamPoly3) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if p.U, err = readCubic(r, "aU", "bU", "cU", "dU"); err != nil {
		return err
	}
	if p.V, err = readCubic(r, "aV", "bV", "cV", "dV"); err != nil {
		return err
	}
	if p.PRange, err = decoder.OptText[ParamPoly3Range](r, "pRange"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (p *ParamPoly3) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	p.U.attrs(&b, "aU", "bU", "cU", "dU")
	p.V.attrs(&b, "aV", "bV", "cV", "dV")
	encoder.OptText(&b, "pRange", p.PRange)

	return b.Visit(visit)
}

func (p *ParamPoly3) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}
