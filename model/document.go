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


// Package model contains the typed road network document and the entities
// it is built from.  Every entity knows how to construct itself from a
// decoder.ReadContext and how to visit itself for an encoder.Sink.
//
// Ownership is a tree except for identifier based references, such as the
// element a road links to or the junction a road belongs to.  Those are
// plain strings that may be resolved with an Index.
package model

import (
	"m4o.io/xodr/internal/decoder"
	"m4o.io/xodr/internal/encoder"
)

// RootElement is the name of the document element.
const RootElement = "OpenDRIVE"

// Document is a complete road network description.
type Document struct {
	Header    Header
	Roads     []Road
	Junctions []Junction
}

var (
	_ decoder.Unmarshaler = (*Document)(nil)
	_ encoder.Element     = (*Document)(nil)
)

func (d *Document) UnmarshalXODR(r *decoder.ReadContext) error {
	return r.Children(
		decoder.Required("header", decoder.Into(&d.Header)),
		decoder.Repeated("road", decoder.Append(&d.Roads)),
		decoder.Repeated("junction", decoder.Append(&d.Junctions)),
	)
}

func (d *Document) VisitAttributes(visit encoder.AttrVisitor) error {
	return visit(nil)
}

func (d *Document) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.Visit(visit,
		encoder.One("header", &d.Header),
		encoder.Each("road", d.Roads),
		encoder.Each("junction", d.Junctions),
	)
}

// TotalLength sums the reference line lengths of all roads.
func (d *Document) TotalLength() Length {
	var total Length
	for i := range d.Roads {
		total += d.Roads[i].Length
	}

	return total
}
