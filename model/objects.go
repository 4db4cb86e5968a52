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

// Objects holds the objects placed along a road.
type Objects struct {
	Objects []Object `json:"objects,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Objects)(nil)
	_ encoder.Element     = (*Objects)(nil)
)

func (o *Objects) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Repeated("object", decoder.Append(&o.Objects)),
	)
}

func (o *Objects) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (o *Objects) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("object", o.Objects))
}

// Object is something that influences a road, such as a parking space or a
// barrier, located at (S, T) in the reference line coordinates.
type Object struct {
	ID      string  `json:"id"`
	S       Length  `json:"s"`
	T       Length  `json:"t"`
	ZOffset *Length `json:"z_offset,omitempty"`
	Type    *string `json:"type,omitempty"`
	Name    *string `json:"name,omitempty"`
	Hdg     *Angle  `json:"hdg,omitempty"`
	Length  *Length `json:"length,omitempty"`
	Width   *Length `json:"width,omitempty"`
	Height  *Length `json:"height,omitempty"`

	ParkingSpace *ParkingSpace `json:"parking_space,omitempty"`
	Borders      *Borders      `json:"borders,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Object)(nil)
	_ encoder.Element     = (*Object)(nil)
)

func (o *Object) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if o.ID, err = r.String("id"); err != nil {
		return err
	}
	if o.S, err = decoder.Text[Length](r, "s"); err != nil {
		return err
	}
	if o.T, err = decoder.Text[Length](r, "t"); err != nil {
		return err
	}
	if o.ZOffset, err = decoder.OptText[Length](r, "zOffset"); err != nil {
		return err
	}
	if o.Type, err = r.OptString("type"); err != nil {
		return err
	}
	if o.Name, err = r.OptString("name"); err != nil {
		return err
	}
	if o.Hdg, err = decoder.OptText[Angle](r, "hdg"); err != nil {
		return err
	}
	if o.Length, err = decoder.OptText[Length](r, "length"); err != nil {
		return err
	}
	if o.Width, err = decoder.OptText[Length](r, "width"); err != nil {
		return err
	}
	if o.Height, err = decoder.OptText[Length](r, "height"); err != nil {
		return err
	}

	return r.Children(
		decoder.Optional("parkingSpace", decoder.IntoPtr(&o.ParkingSpace)),
		decoder.Optional("borders", decoder.IntoPtr(&o.Borders)),
	)
}

func (o *Object) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.String("id", o.ID).
		Text("s", o.S).
		Text("t", o.T)
	encoder.OptText(&b, "zOffset", o.ZOffset)
	b.OptString("type", o.Type).
		OptString("name", o.Name)
	encoder.OptText(&b, "hdg", o.Hdg)
	encoder.OptText(&b, "length", o.Length)
	encoder.OptText(&b, "width", o.Width)
	encoder.OptText(&b, "height", o.Height)

	return b.Visit(visit)
}

func (o *Object) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Opt("parkingSpace", o.ParkingSpace),
		encoder.Opt("borders", o.Borders),
	)
}

// ParkingSpace details an object that is a parking space.  Spaces for
// women and handicapped people are for cars.
type ParkingSpace struct {
	Access       Access  `json:"access"`
	Restrictions *string `json:"restrictions,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*ParkingSpace)(nil)
	_ encoder.Element     = (*ParkingSpace)(nil)
)

func (p *ParkingSpace) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if p.Access, err = decoder.Text[Access](r, "access"); err != nil {
		return err
	}
	if p.Restrictions, err = r.OptString("restrictions"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (p *ParkingSpace) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.Text("access", p.Access).
		OptString("restrictions", p.Restrictions)

	return b.Visit(visit)
}

func (p *ParkingSpace) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Borders holds the borders of an object.
type Borders struct {
	Borders []ObjectBorder `json:"borders"`
}

var (
	_ decoder.Unmarshaler = (*Borders)(nil)
	_ encoder.Element     = (*Borders)(nil)
)

func (b *Borders) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.OneOrMore("border", decoder.Append(&b.Borders)),
	)
}

func (b *Borders) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (b *Borders) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("border", b.Borders))
}

// ObjectBorder is a border of a certain type and width around the outline
// OutlineID of an object.
type ObjectBorder struct {
	Width              Length     `json:"width"`
	Type               BorderType `json:"type"`
	OutlineID          int32      `json:"outline_id"`
	UseCompleteOutline *bool      `json:"use_complete_outline,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*ObjectBorder)(nil)
	_ encoder.Element     = (*ObjectBorder)(nil)
)

func (o *ObjectBorder) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if o.Width, err = decoder.Text[Length](r, "width"); err != nil {
		return err
	}
	if o.Type, err = decoder.Text[BorderType](r, "type"); err != nil {
		return err
	}
	if o.OutlineID, err = decoder.Int[int32](r, "outlineId"); err != nil {
		return err
	}
	if o.UseCompleteOutline, err = r.OptBool("useCompleteOutline"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (o *ObjectBorder) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.Text("width", o.Width).
		Text("type", o.Type)
	encoder.Int(&b, "outlineId", o.OutlineID)
	b.OptBool("useCompleteOutline", o.UseCompleteOutline)

	return b.Visit(visit)
}

func (o *ObjectBorder) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}
