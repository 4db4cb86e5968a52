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
)

// BoundingBox is an axis aligned extent in the inertial system.  North and
// South bound y, East and West bound x.
type BoundingBox struct {
	North Length `json:"north"`
	South Length `json:"south"`
	East  Length `json:"east"`
	West  Length `json:"west"`
}

// InitialBoundingBox creates a BoundingBox that is meant to be expanded.
func InitialBoundingBox() *BoundingBox {
	return &BoundingBox{
		North: Length(math.Inf(-1)),
		South: Length(math.Inf(1)),
		East:  Length(math.Inf(-1)),
		West:  Length(math.Inf(1)),
	}
}

// Empty reports whether nothing has been added to the box yet.
func (b *BoundingBox) Empty() bool {
	return b.West > b.East || b.South > b.North
}

// EqualWithin checks if two bounding boxes are within a specific epsilon.
func (b *BoundingBox) EqualWithin(o *BoundingBox, eps Epsilon) bool {
	return b.West.EqualWithin(o.West, eps) &&
		b.East.EqualWithin(o.East, eps) &&
		b.North.EqualWithin(o.North, eps) &&
		b.South.EqualWithin(o.South, eps)
}

// Contains checks if the bounding box contains the point (x, y).
func (b *BoundingBox) Contains(x, y Length) bool {
	return b.West <= x && x <= b.East && b.South <= y && y <= b.North
}

func (b *BoundingBox) ExpandWithXY(x, y Length) {
	if b.North < y {
		b.North = y
	}

	if b.South > y {
		b.South = y
	}

	if b.West > x {
		b.West = x
	}

	if b.East < x {
		b.East = x
	}
}

func (b *BoundingBox) ExpandWithBoundingBox(bbox *BoundingBox) {
	if b.North < bbox.North {
		b.North = bbox.North
	}

	if b.South > bbox.South {
		b.South = bbox.South
	}

	if b.West > bbox.West {
		b.West = bbox.West
	}

	if b.East < bbox.East {
		b.East = bbox.East
	}
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(float64(b.West)), ftoa(float64(b.South)),
		ftoa(float64(b.East)), ftoa(float64(b.North)))
}

// Extent returns the box spanned by the start points of every road's plan
// view, or nil if the document has no geometry.
func (d *Document) Extent() *BoundingBox {
	b := InitialBoundingBox()
	for i := range d.Roads {
		if pb := d.Roads[i].PlanView.Bounds(); pb != nil {
			b.ExpandWithBoundingBox(pb)
		}
	}

	if b.Empty() {
		return nil
	}

	return b
}
