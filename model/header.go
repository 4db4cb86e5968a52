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

// Header carries the format revision and descriptive metadata of a
// document.  North, South, East and West bound the network in the inertial
// system.
type Header struct {
	RevMajor uint16  `json:"rev_major" yaml:"rev_major"`
	RevMinor uint16  `json:"rev_minor" yaml:"rev_minor"`
	Name     *string `json:"name,omitempty" yaml:"name,omitempty"`
	Version  *string `json:"version,omitempty" yaml:"version,omitempty"`
	Date     *string `json:"date,omitempty" yaml:"date,omitempty"`
	North    *Length `json:"north,omitempty" yaml:"north,omitempty"`
	South    *Length `json:"south,omitempty" yaml:"south,omitempty"`
	East     *Length `json:"east,omitempty" yaml:"east,omitempty"`
	West     *Length `json:"west,omitempty" yaml:"west,omitempty"`
	Vendor   *string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
}

var (
	_ decoder.Unmarshaler = (*Header)(nil)
	_ encoder.Element     = (*Header)(nil)
)

func (h *Header) UnmarshalXODR(r *decoder.ReadContext) (err error) {
	if h.RevMajor, err = decoder.Uint[uint16](r, "revMajor"); err != nil {
		return err
	}
	if h.RevMinor, err = decoder.Uint[uint16](r, "revMinor"); err != nil {
		return err
	}
	if h.Name, err = r.OptString("name"); err != nil {
		return err
	}
	if h.Version, err = r.OptString("version"); err != nil {
		return err
	}
	if h.Date, err = r.OptString("date"); err != nil {
		return err
	}
	if h.North, err = decoder.OptText[Length](r, "north"); err != nil {
		return err
	}
	if h.South, err = decoder.OptText[Length](r, "south"); err != nil {
		return err
	}
	if h.East, err = decoder.OptText[Length](r, "east"); err != nil {
		return err
	}
	if h.West, err = decoder.OptText[Length](r, "west"); err != nil {
		return err
	}
	if h.Vendor, err = r.OptString("vendor"); err != nil {
		return err
	}

	// geoReference, offset and user data are not modeled
	return r.Children()
}

func (h *Header) VisitAttributes(visit encoder.AttrVisitor) error {
	var b encoder.AttrBuilder

	encoder.Int(&b, "revMajor", h.RevMajor)
	encoder.Int(&b, "revMinor", h.RevMinor)
	b.OptString("name", h.Name).
		OptString("version", h.Version).
		OptString("date", h.Date)
	encoder.OptText(&b, "north", h.North)
	encoder.OptText(&b, "south", h.South)
	encoder.OptText(&b, "east", h.East)
	encoder.OptText(&b, "west", h.West)
	b.OptString("vendor", h.Vendor)

	return b.Visit(visit)
}

func (h *Header) VisitChildren(visit encoder.ChildVisitor) error {
	return encoder.NoChildren(visit)
}

// Bounds returns the extent stated by the header, or nil unless all four
// of North, South, East and West are present.
func (h *Header) Bounds() *BoundingBox {
	if h.North == nil || h.South == nil || h.East == nil || h.West == nil {
		return nil
	}

	return &BoundingBox{North: *h.North, South: *h.South, East: *h.East, West: *h.West}
}

// SetBounds states b as the extent of the network.
func (h *Header) SetBounds(b *BoundingBox) {
	if b == nil {
		h.North, h.South, h.East, h.West = nil, nil, nil, nil

		return
	}

	north, south, east, west := b.North, b.South, b.East, b.West
	h.North, h.South, h.East, h.West = &north, &south, &east, &west
}
