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


package validate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/reoring/goskema"

	"m4o.io/xodr/model"
)

const root = "/" + model.RootElement

type checker struct {
	ix     *model.Index
	bounds *model.BoundingBox
	issues goskema.Issues
}

func (c *checker) add(path, code, msg string, params map[string]any) {
	c.issues = goskema.AppendIssues(c.issues, goskema.Issue{
		Path:    path,
		Code:    code,
		Message: msg,
		Offset:  -1,
		Params:  params,
	})
}

// Document checks d and returns every finding in document order, or nil if
// there are none.
func Document(d *model.Document) Issues {
	c := &checker{bounds: d.Header.Bounds()}

	c.unique(d)

	// references are only checked against an unambiguous index
	if ix, err := model.NewIndex(d); err == nil {
		c.ix = ix
	}

	for i := range d.Roads {
		c.road(fmt.Sprintf("%s/road[%d]", root, i), &d.Roads[i])
	}

	for i := range d.Junctions {
		c.junction(fmt.Sprintf("%s/junction[%d]", root, i), &d.Junctions[i])
	}

	if len(c.issues) == 0 {
		return nil
	}

	return c.issues
}

func (c *checker) unique(d *model.Document) {
	roads := make(map[string]int, len(d.Roads))
	for i := range d.Roads {
		id := d.Roads[i].ID
		if first, ok := roads[id]; ok {
			c.add(fmt.Sprintf("%s/road[%d]", root, i), CodeUniqueness,
				fmt.Sprintf("road id %q already used by road[%d]", id, first),
				map[string]any{"id": id, "first": first})

			continue
		}

		roads[id] = i
	}

	junctions := make(map[string]int, len(d.Junctions))
	for i := range d.Junctions {
		id := d.Junctions[i].ID
		if first, ok := junctions[id]; ok {
			c.add(fmt.Sprintf("%s/junction[%d]", root, i), CodeUniqueness,
				fmt.Sprintf("junction id %q already used by junction[%d]", id, first),
				map[string]any{"id": id, "first": first})

			continue
		}

		junctions[id] = i
	}
}

func finite(l model.Length) bool {
	return !math.IsNaN(float64(l)) && !math.IsInf(float64(l), 0)
}

func (c *checker) road(path string, rd *model.Road) {
	if _, err := strconv.ParseUint(rd.ID, 10, 32); err != nil {
		c.add(path, CodeInvalidFormat,
			fmt.Sprintf("road id %q is not an unsigned 32 bit integer", rd.ID),
			map[string]any{"id": rd.ID})
	}

	if !finite(rd.Length) || rd.Length < 0 {
		c.add(path, CodeDomainRange,
			fmt.Sprintf("road length %s is negative or not finite", rd.Length),
			map[string]any{"length": rd.Length.Meters()})
	}

	if rd.InJunction() && c.ix != nil {
		if _, ok := c.ix.Junction(rd.Junction); !ok {
			c.add(path, CodeDanglingReference,
				fmt.Sprintf("junction %q does not exist", rd.Junction),
				map[string]any{"junction": rd.Junction})
		}
	}

	if rd.Link != nil {
		c.link(path+"/link/predecessor", rd.Link.Predecessor)
		c.link(path+"/link/successor", rd.Link.Successor)
	}

	pv := path + "/planView"
	for i := range rd.PlanView.Geometries {
		g := &rd.PlanView.Geometries[i]
		if !finite(g.Length) || g.Length < 0 {
			c.add(fmt.Sprintf("%s/geometry[%d]", pv, i), CodeDomainRange,
				fmt.Sprintf("geometry length %s is negative or not finite", g.Length),
				map[string]any{"length": g.Length.Meters()})
		}

		if c.bounds != nil && !c.bounds.Contains(g.X, g.Y) {
			c.add(fmt.Sprintf("%s/geometry[%d]", pv, i), CodeDomainRange,
				fmt.Sprintf("geometry starts at (%s, %s), outside of the header bounds %s", g.X, g.Y, c.bounds),
				map[string]any{"x": g.X.Meters(), "y": g.Y.Meters()})
		}
	}

	c.sequence(pv, "geometry",
		starts(rd.PlanView.Geometries, func(g *model.Geometry) model.Length { return g.S }), rd.Length, true)

	if ep := rd.ElevationProfile; ep != nil {
		c.sequence(path+"/elevationProfile", "elevation",
			starts(ep.Elevations, func(e *model.Elevation) model.Length { return e.S }), rd.Length, true)
	}

	if lp := rd.LateralProfile; lp != nil {
		c.sequence(path+"/lateralProfile", "superelevation",
			starts(lp.Superelevations, func(s *model.Superelevation) model.Length { return s.S }), rd.Length, true)
		c.sequence(path+"/lateralProfile", "shape",
			starts(lp.Shapes, func(s *model.Shape) model.Length { return s.S }), rd.Length, false)
	}

	c.lanes(path+"/lanes", &rd.Lanes, rd.Length)
}

func starts[T any](s []T, f func(*T) model.Length) []model.Length {
	out := make([]model.Length, len(s))
	for i := range s {
		out[i] = f(&s[i])
	}

	return out
}

// sequence checks that the s-coordinates of consecutive tag elements lie on
// the road and ascend.  Equal neighbors are accepted unless strict.
func (c *checker) sequence(parent, tag string, ss []model.Length, length model.Length, strict bool) {
	for i, s := range ss {
		path := fmt.Sprintf("%s/%s[%d]", parent, tag, i)

		if !finite(s) || s < 0 || (finite(length) && length >= 0 && s > length) {
			c.add(path, CodeDomainRange,
				fmt.Sprintf("s %s outside of road [0, %s]", s, length),
				map[string]any{"s": s.Meters(), "length": length.Meters()})
		}

		if i == 0 {
			continue
		}

		prev := ss[i-1]
		if s < prev || (strict && s == prev) {
			c.add(path, CodeOrdering,
				fmt.Sprintf("s %s does not ascend from %s", s, prev),
				map[string]any{"s": s.Meters(), "previous": prev.Meters()})
		}
	}
}

func (c *checker) lanes(path string, l *model.Lanes, length model.Length) {
	c.sequence(path, "laneOffset",
		starts(l.LaneOffsets, func(o *model.LaneOffset) model.Length { return o.S }), length, true)
	c.sequence(path, "laneSection",
		starts(l.LaneSections, func(s *model.LaneSection) model.Length { return s.S }), length, true)

	for i := range l.LaneSections {
		ls := &l.LaneSections[i]
		sp := fmt.Sprintf("%s/laneSection[%d]", path, i)

		if ls.Left != nil {
			c.laneIDs(sp+"/left", ls.Left, func(id int32) bool { return id > 0 }, "positive")
		}

		c.laneIDs(sp+"/center", &ls.Center, func(id int32) bool { return id == 0 }, "zero")

		if ls.Right != nil {
			c.laneIDs(sp+"/right", ls.Right, func(id int32) bool { return id < 0 }, "negative")
		}
	}
}

func (c *checker) laneIDs(path string, g *model.LaneGroup, ok func(int32) bool, want string) {
	for i := range g.Lanes {
		if id := g.Lanes[i].ID; !ok(id) {
			c.add(fmt.Sprintf("%s/lane[%d]", path, i), CodeDomainRange,
				fmt.Sprintf("lane id %d must be %s", id, want),
				map[string]any{"id": id})
		}
	}
}

func (c *checker) link(path string, p *model.PredecessorSuccessor) {
	if p == nil {
		return
	}

	if p.ContactPoint != nil && p.ElementS != nil {
		c.add(path, CodeConflict, "contactPoint and elementS are alternatives", nil)
	}

	if p.ElementS != nil && p.IsJunction() {
		c.add(path, CodeConflict, "elementS only applies to roads", nil)
	}

	if p.ElementDir != nil && p.ElementS == nil {
		c.add(path, CodeConflict, "elementDir requires elementS", nil)
	}

	if c.ix == nil {
		return
	}

	target, err := c.ix.Resolve(p)
	if err != nil {
		c.add(path, CodeDanglingReference, err.Error(), map[string]any{"elementId": p.ElementID})

		return
	}

	if target.Road != nil && p.ElementS != nil {
		if s := *p.ElementS; s < 0 || s > target.Road.Length {
			c.add(path, CodeDomainRange,
				fmt.Sprintf("elementS %s outside of road %q [0, %s]", s, target.Road.ID, target.Road.Length),
				map[string]any{"elementS": s.Meters(), "length": target.Road.Length.Meters()})
		}
	}
}

func (c *checker) junction(path string, j *model.Junction) {
	used := make(map[string]bool, len(j.Connections))

	for i := range j.Connections {
		conn := &j.Connections[i]
		cp := fmt.Sprintf("%s/connection[%d]", path, i)

		if c.ix == nil {
			continue
		}

		if _, ok := c.ix.Road(conn.IncomingRoad); !ok {
			c.add(cp, CodeDanglingReference,
				fmt.Sprintf("incoming road %q does not exist", conn.IncomingRoad),
				map[string]any{"incomingRoad": conn.IncomingRoad})
		}

		used[conn.ConnectingRoad] = true

		rd, ok := c.ix.Road(conn.ConnectingRoad)
		if !ok {
			c.add(cp, CodeDanglingReference,
				fmt.Sprintf("connecting road %q does not exist", conn.ConnectingRoad),
				map[string]any{"connectingRoad": conn.ConnectingRoad})

			continue
		}

		if j.Kind() == model.JunctionTypeDefault && rd.Junction != j.ID {
			c.add(cp, CodeConflict,
				fmt.Sprintf("connecting road %q belongs to junction %q", rd.ID, rd.Junction),
				map[string]any{"connectingRoad": rd.ID, "junction": rd.Junction})
		}
	}

	if c.ix == nil || j.Kind() != model.JunctionTypeDefault {
		return
	}

	for _, rd := range c.ix.Members(j.ID) {
		if !used[rd.ID] {
			c.add(path, CodeConflict,
				fmt.Sprintf("road %q belongs to the junction but no connection uses it", rd.ID),
				map[string]any{"road": rd.ID})
		}
	}
}
