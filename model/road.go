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

// NoJunction is the junction id of a road that is not part of a junction.
const NoJunction = "-1"

// Road is a stretch of reference line together with everything laid out
// along it.
//
// ID is expected to hold an unsigned 32 bit integer but is kept as text.
// Junction names the junction the road belongs to, or NoJunction.
type Road struct {
	ID       string  `json:"id"`
	Junction string  `json:"junction"`
	Length   Length  `json:"length"`
	Name     *string `json:"name,omitempty"`
	Rule     *Rule   `json:"rule,omitempty"`

	Link             *Link             `json:"link,omitempty"`
	PlanView         PlanView          `json:"plan_view"`
	ElevationProfile *ElevationProfile `json:"elevation_profile,omitempty"`
	LateralProfile   *LateralProfile   `json:"lateral_profile,omitempty"`
	Lanes            Lanes             `json:"lanes"`
	Objects          *Objects          `json:"objects,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Road)(nil)
	_ encoder.Element     = (*Road)(nil)
)

// TrafficRule returns the rule traffic follows on the road.  A road without
// an explicit rule carries right hand traffic.
func (rd *Road) TrafficRule() Rule {
	if rd.Rule == nil {
		return RightHandTraffic
	}

	return *rd.Rule
}

// InJunction reports whether the road is a connecting road inside a
// junction.
func (rd *Road) InJunction() bool {
	return rd.Junction != NoJunction
}

func (rd *Road) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if rd.ID, err = r.String("id"); err != nil {
		return err
	}
	if rd.Junction, err = r.String("junction"); err != nil {
		return err
	}
	if rd.Length, err = decoder.Text[Length](r, "length"); err != nil {
		return err
	}
	if rd.Name, err = r.OptString("name"); err != nil {
		return err
	}
	if rd.Rule, err = decoder.OptText[Rule](r, "rule"); err != nil {
		return err
	}

	return r.Children(
		decoder.Optional("link", decoder.IntoPtr(&rd.Link)),
		decoder.Required("planView", decoder.Into(&rd.PlanView)),
		decoder.Optional("elevationProfile", decoder.IntoPtr(&rd.ElevationProfile)),
		decoder.Optional("lateralProfile", decoder.IntoPtr(&rd.LateralProfile)),
		decoder.Required("lanes", decoder.Into(&rd.Lanes)),
		decoder.Optional("objects", decoder.IntoPtr(&rd.Objects)),
	)
}

func (rd *Road) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.String("id", rd.ID).
		String("junction", rd.Junction).
		Text("length", rd.Length).
		OptString("name", rd.Name)
	encoder.OptText(&b, "rule", rd.Rule)

	return b.Visit(visit)
}

func (rd *Road) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Opt("link", rd.Link),
		encoder.One("planView", &rd.PlanView),
		encoder.Opt("elevationProfile", rd.ElevationProfile),
		encoder.Opt("lateralProfile", rd.LateralProfile),
		encoder.One("lanes", &rd.Lanes),
		encoder.Opt("objects", rd.Objects),
	)
}

// Link connects a road to the elements before and after it.  Both ends are
// optional; a road without either is isolated.
type Link struct {
	Predecessor *PredecessorSuccessor `json:"predecessor,omitempty"`
	Successor   *PredecessorSuccessor `json:"successor,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Link)(nil)
	_ encoder.Element     = (*Link)(nil)
)

func (l *Link) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Optional("predecessor", decoder.IntoPtr(&l.Predecessor)),
		decoder.Optional("successor", decoder.IntoPtr(&l.Successor)),
	)
}

func (l *Link) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (l *Link) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.Opt("predecessor", l.Predecessor),
		encoder.Opt("successor", l.Successor),
	)
}

// PredecessorSuccessor is one edge of the road linkage graph.  ElementID
// names a road or a junction and is not resolved while reading.
//
// ContactPoint and ElementS are alternative anchors, ElementDir only
// applies together with ElementS, and ElementS only applies to roads.  None
// of these combinations is checked here; see the validate package.
type PredecessorSuccessor struct {
	ContactPoint *ContactPoint `json:"contact_point,omitempty"`
	ElementDir   *ElementDir   `json:"element_dir,omitempty"`
	ElementID    string        `json:"element_id"`
	ElementS     *Length       `json:"element_s,omitempty"`
	ElementType  *ElementType  `json:"element_type,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*PredecessorSuccessor)(nil)
	_ encoder.Element     = (*PredecessorSuccessor)(nil)
)

// IsJunction reports whether the edge points at a junction.
func (p *PredecessorSuccessor) IsJunction() bool {
	return p.ElementType != nil && *p.ElementType == ElementTypeJunction
}

func (p *PredecessorSuccessor) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if p.ContactPoint, err = decoder.OptText[ContactPoint](r, "contactPoint"); err != nil {
		return err
	}
	if p.ElementDir, err = decoder.OptText[ElementDir](r, "elementDir"); err != nil {
		return err
	}
	if p.ElementID, err = r.String("elementId"); err != nil {
		return err
	}
	if p.ElementS, err = decoder.OptText[Length](r, "elementS"); err != nil {
		return err
	}
	if p.ElementType, err = decoder.OptText[ElementType](r, "elementType"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (p *PredecessorSuccessor) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	encoder.OptText(&b, "contactPoint", p.ContactPoint)
	encoder.OptText(&b, "elementDir", p.ElementDir)
	b.String("elementId", p.ElementID)
	encoder.OptText(&b, "elementS", p.ElementS)
	encoder.OptText(&b, "elementType", p.ElementType)

	return b.Visit(visit)
}

func (p *PredecessorSuccessor) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}
