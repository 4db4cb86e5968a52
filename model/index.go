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
	"fmt"
)

var (
	// ErrDuplicateID is returned when two roads, or two junctions, share an
	// id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrDanglingReference is returned when a reference names an element
	// that does not exist.
	ErrDanglingReference = errors.New("dangling reference")
)

// Index maps the ids of a parsed Document to its roads and junctions.  The
// index points into the document and must be rebuilt if the document's
// slices change.
type Index struct {
	roads     map[string]*Road
	junctions map[string]*Junction
	members   map[string][]*Road
}

// NewIndex builds an index over d.
func NewIndex(d *Document) (*Index, error) {
	ix := &Index{
		roads:     make(map[string]*Road, len(d.Roads)),
		junctions: make(map[string]*Junction, len(d.Junctions)),
		members:   make(map[string][]*Road),
	}

	for i := range d.Roads {
		rd := &d.Roads[i]
		if _, ok := ix.roads[rd.ID]; ok {
			return nil, fmt.Errorf("road %q: %w", rd.ID, ErrDuplicateID)
		}

		ix.roads[rd.ID] = rd

		if rd.InJunction() {
			ix.members[rd.Junction] = append(ix.members[rd.Junction], rd)
		}
	}

	for i := range d.Junctions {
		j := &d.Junctions[i]
		if _, ok := ix.junctions[j.ID]; ok {
			return nil, fmt.Errorf("junction %q: %w", j.ID, ErrDuplicateID)
		}

		ix.junctions[j.ID] = j
	}

	return ix, nil
}

// Road returns the road with the given id.
func (ix *Index) Road(id string) (*Road, bool) {
	rd, ok := ix.roads[id]

	return rd, ok
}

// Junction returns the junction with the given id.
func (ix *Index) Junction(id string) (*Junction, bool) {
	j, ok := ix.junctions[id]

	return j, ok
}

// Members returns the roads that belong to the junction id, in document
// order.
func (ix *Index) Members(id string) []*Road {
	return ix.members[id]
}

// Target is the element a PredecessorSuccessor points at.  Exactly one of
// Road and Junction is set.
type Target struct {
	Road     *Road
	Junction *Junction
}

// Resolve looks up the element p refers to.  Without an element type a
// road is tried before a junction.
func (ix *Index) Resolve(p *PredecessorSuccessor) (Target, error) {
	if p.ElementType == nil || *p.ElementType == ElementTypeRoad {
		if rd, ok := ix.roads[p.ElementID]; ok {
			return Target{Road: rd}, nil
		}

		if p.ElementType != nil {
			return Target{}, fmt.Errorf("road %q: %w", p.ElementID, ErrDanglingReference)
		}
	}

	if j, ok := ix.junctions[p.ElementID]; ok {
		return Target{Junction: j}, nil
	}

	return Target{}, fmt.Errorf("%s %q: %w", p.kind(), p.ElementID, ErrDanglingReference)
}

func (p *PredecessorSuccessor) kind() string {
	if p.ElementType == nil {
		return "element"
	}

	return p.ElementType.String()
}
