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

// Lanes is the cross sectional lane layout of a road.
type Lanes struct {
	LaneOffsets  []LaneOffset  `json:"lane_offsets,omitempty"`
	LaneSections []LaneSection `json:"lane_sections"`
}

var (
	_ decoder.Unmarshaler = (*Lanes)(nil)
	_ encoder.Element     = (*Lanes)(nil)
)

func (l *Lanes) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Repeated("laneOffset", decoder.Append(&l.LaneOffsets)),
		decoder.OneOrMore("laneSection", decoder.Append(&l.LaneSections)),
	)
}

func (l *Lanes) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (l *Lanes) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Each("laneOffset", l.LaneOffsets),
		encoder.Each("laneSection", l.LaneSections),
	)
}

// Count returns the number of lanes over all sections.
func (l *Lanes) Count() int {
	n := 0
	for i := range l.LaneSections {
		n += l.LaneSections[i].Count()
	}

	return n
}

// LaneOffset shifts the center lane away from the reference line, from S
// onwards.
type LaneOffset struct {
	Cubic
	S Length `json:"s"`
}

var (
	_ decoder.Unmarshaler = (*LaneOffset)(nil)
	_ encoder.Element     = (*LaneOffset)(nil)
)

func (o *LaneOffset) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if o.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}

	o.Cubic, err = readPiece(r)

	return err
}

func (o *LaneOffset) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	o.Cubic.attrs(&b, "a", "b", "c", "d")
	b.Text("s", o.S)

	return b.Visit(visit)
}

func (o *LaneOffset) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// LaneSection is a stretch of road, starting at S, over which the number of
// lanes does not change.  Lanes left of the center have positive ids, lanes
// right of it negative ids.
type LaneSection struct {
	S          Length     `json:"s"`
	SingleSide *bool      `json:"single_side,omitempty"`
	Left       *LaneGroup `json:"left,omitempty"`
	Center     LaneGroup  `json:"center"`
	Right      *LaneGroup `json:"right,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*LaneSection)(nil)
	_ encoder.Element     = (*LaneSection)(nil)
)

// Count returns the number of lanes in the section, center lane included.
func (s *LaneSection) Count() int {
	n := len(s.Center.Lanes)
	if s.Left != nil {
		n += len(s.Left.Lanes)
	}
	if s.Right != nil {
		n += len(s.Right.Lanes)
	}

	return n
}

func (s *LaneSection) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if s.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}
	if s.SingleSide, err = r.OptBool("singleSide"); err != nil {
		return err
	}

	return r.Children(
		decoder.Optional("left", decoder.IntoPtr(&s.Left)),
		decoder.Required("center", decoder.Into(&s.Center)),
		decoder.Optional("right", decoder.IntoPtr(&s.Right)),
	)
}

func (s *LaneSection) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.Text("s", s.S).
		OptBool("singleSide", s.SingleSide)

	return b.Visit(visit)
}

func (s *LaneSection) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Opt("left", s.Left),
		encoder.One("center", &s.Center),
		encoder.Opt("right", s.Right),
	)
}

// LaneGroup holds the lanes of one side of a lane section.
type LaneGroup struct {
	Lanes []Lane `json:"lanes"`
}

var (
	_ decoder.Unmarshaler = (*LaneGroup)(nil)
	_ encoder.Element     = (*LaneGroup)(nil)
)

func (g *LaneGroup) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.OneOrMore("lane", decoder.Append(&g.Lanes)),
	)
}

func (g *LaneGroup) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (g *LaneGroup) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("lane", g.Lanes))
}

// Lane is a single lane.
type Lane struct {
	ID    int32    `json:"id"`
	Type  LaneType `json:"type"`
	Level *bool    `json:"level,omitempty"`

	Link    *LaneLink `json:"link,omitempty"`
	Widths  []Width   `json:"widths,omitempty"`
	Borders []Border  `json:"borders,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Lane)(nil)
	_ encoder.Element     = (*Lane)(nil)
)

func (l *Lane) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if l.ID, err = decoder.Int[int32](r, "id"); err != nil {
		return err
	}
	if l.Type, err = decoder.Text[LaneType](r, "type"); err != nil {
		return err
	}
	if l.Level, err = r.OptBool("level"); err != nil {
		return err
	}

	return r.Children(
		decoder.Optional("link", decoder.IntoPtr(&l.Link)),
		decoder.Repeated("width", decoder.Append(&l.Widths)),
		decoder.Repeated("border", decoder.Append(&l.Borders)),
	)
}

func (l *Lane) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	encoder.Int(&b, "id", l.ID)
	b.Text("type", l.Type).
		OptBool("level", l.Level)

	return b.Visit(visit)
}

func (l *Lane) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Opt("link", l.Link),
		encoder.Each("width", l.Widths),
		encoder.Each("border", l.Borders),
	)
}

// LaneLink names the lanes, by id, that precede and follow a lane.
type LaneLink struct {
	Predecessors []LaneRef `json:"predecessors,omitempty"`
	Successors   []LaneRef `json:"successors,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*LaneLink)(nil)
	_ encoder.Element     = (*LaneLink)(nil)
)

func (l *LaneLink) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Repeated("predecessor", decoder.Append(&l.Predecessors)),
		decoder.Repeated("successor", decoder.Append(&l.Successors)),
	)
}

func (l *LaneLink) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (l *LaneLink) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Each("predecessor", l.Predecessors),
		encoder.Each("successor", l.Successors),
	)
}

// LaneRef refers to a lane of a neighboring road or lane section.
type LaneRef struct {
	ID int32 `json:"id"`
}

var (
	_ decoder.Unmarshaler = (*LaneRef)(nil)
	_ encoder.Element     = (*LaneRef)(nil)
)

func (l *LaneRef) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if l.ID, err = decoder.Int[int32](r, "id"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (l *LaneRef) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	encoder.Int(&b, "id", l.ID)

	return b.Visit(visit)
}

func (l *LaneRef) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Width is one piece of the width of a lane, measured from SOffset relative
// to the start of the lane section.
type Width struct {
	Cubic
	SOffset Length `json:"s_offset"`
}

var (
	_ decoder.Unmarshaler = (*Width)(nil)
	_ encoder.Element     = (*Width)(nil)
)

func (w *Width) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if w.SOffset, err = decoder.Text[Length](r, "sOffset"); err != nil {
		return err
	}

	w.Cubic, err = readPiece(r)

	return err
}

func (w *Width) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	w.Cubic.attrs(&b, "a", "b", "c", "d")
	b.Text("sOffset", w.SOffset)

	return b.Visit(visit)
}

func (w *Width) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Border is one piece of the outer border of a lane, an alternative to
// Width.
type Border struct {
	Cubic
	SOffset Length `json:"s_offset"`
}

var (
	_ decoder.Unmarshaler = (*Border)(nil)
	_ encoder.Element     = (*Border)(nil)
)

func (bd *Border) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if bd.SOffset, err = decoder.Text[Length](r, "sOffset"); err != nil {
		return err
	}

	bd.Cubic, err = readPiece(r)

	return err
}

func (bd *Border) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	bd.Cubic.attrs(&b, "a", "b", "c", "d")
	b.Text("sOffset", bd.SOffset)

	return b.Visit(visit)
}

func (bd *Border) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}
