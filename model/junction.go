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

// Junction is an area where roads meet.  Its connections name the incoming
// road and the connecting road that leads through the junction.
type Junction struct {
	ID          string        `json:"id"`
	Name        *string       `json:"name,omitempty"`
	Type        *JunctionType `json:"type,omitempty"`
	Connections []Connection  `json:"connections,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Junction)(nil)
	_ encoder.Element     = (*Junction)(nil)
)

// Kind returns the type of the junction, which is JunctionTypeDefault when
// absent.
func (j *Junction) Kind() JunctionType {
	if j.Type == nil {
		return JunctionTypeDefault
	}

	return *j.Type
}

func (j *Junction) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if j.ID, err = r.String("id"); err != nil {
		return err
	}
	if j.Name, err = r.OptString("name"); err != nil {
		return err
	}
	if j.Type, err = decoder.OptText[JunctionType](r, "type"); err != nil {
		return err
	}

	return r.Children(
		decoder.Repeated("connection", decoder.Append(&j.Connections)),
	)
}

func (j *Junction) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.String("id", j.ID).
		OptString("name", j.Name)
	encoder.OptText(&b, "type", j.Type)

	return b.Visit(visit)
}

func (j *Junction) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("connection", j.Connections))
}

// Connection leads from IncomingRoad onto ConnectingRoad, entering the
// latter at ContactPoint.
type Connection struct {
	ID             string        `json:"id"`
	IncomingRoad   string        `json:"incoming_road"`
	ConnectingRoad string        `json:"connecting_road"`
	ContactPoint   *ContactPoint `json:"contact_point,omitempty"`

	LaneLinks []JunctionLaneLink `json:"lane_links,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Connection)(nil)
	_ encoder.Element     = (*Connection)(nil)
)

func (c *Connection) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if c.ID, err = r.String("id"); err != nil {
		return err
	}
	if c.IncomingRoad, err = r.String("incomingRoad"); err != nil {
		return err
	}
	if c.ConnectingRoad, err = r.String("connectingRoad"); err != nil {
		return err
	}
	if c.ContactPoint, err = decoder.OptText[ContactPoint](r, "contactPoint"); err != nil {
		return err
	}

	return r.Children(
		decoder.Repeated("laneLink", decoder.Append(&c.LaneLinks)),
	)
}

func (c *Connection) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	b.String("id", c.ID).
		String("incomingRoad", c.IncomingRoad).
		String("connectingRoad", c.ConnectingRoad)
	encoder.OptText(&b, "contactPoint", c.ContactPoint)

	return b.Visit(visit)
}

func (c *Connection) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit, encoder.Each("laneLink", c.LaneLinks))
}

// JunctionLaneLink maps lane From of the incoming road onto lane To of the
// connecting road.
type JunctionLaneLink struct {
	From int32 `json:"from"`
	To   int32 `json:"to"`
}

var (
	_ decoder.Unmarshaler = (*JunctionLaneLink)(nil)
	_ encoder.Element     = (*JunctionLaneLink)(nil)
)

func (l *JunctionLaneLink) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if l.From, err = decoder.Int[int32](r, "from"); err != nil {
		return err
	}
	if l.To, err = decoder.Int[int32](r, "to"); err != nil {
		return err
	}

	return r.NoChildren()
}

func (l *JunctionLaneLink) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	encoder.Int(&b, "from", l.From)
	encoder.Int(&b, "to", l.To)

	return b.Visit(visit)
}

func (l *JunctionLaneLink) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}
