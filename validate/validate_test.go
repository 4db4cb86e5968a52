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


package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/xodr/model"
	"m4o.io/xodr/validate"
)

func ptr[T any](v T) *T { return &v }

func road(id string, length model.Length) model.Road {
	return model.Road{
		ID:       id,
		Junction: model.NoJunction,
		Length:   length,
		PlanView: model.PlanView{Geometries: []model.Geometry{
			{S: 0, Length: length, Shape: &model.Line{}},
		}},
		Lanes: model.Lanes{LaneSections: []model.LaneSection{{
			Center: model.LaneGroup{Lanes: []model.Lane{{ID: 0, Type: model.LaneTypeNone}}},
			Right:  &model.LaneGroup{Lanes: []model.Lane{{ID: -1, Type: model.LaneTypeDriving}}},
		}}},
	}
}

func addConnection(d *model.Document, connectingRoad string) {
	d.Junctions[0].Connections = append(d.Junctions[0].Connections, model.Connection{
		ID: "1", IncomingRoad: "1", ConnectingRoad: connectingRoad,
	})
}

func validDocument() *model.Document {
	r1 := road("1", 100)
	r2 := road("2", 50)
	r3 := road("3", 20)
	r3.Junction = "10"

	r1.Link = &model.Link{Successor: &model.PredecessorSuccessor{
		ElementID:   "10",
		ElementType: ptr(model.ElementTypeJunction),
	}}
	r2.Link = &model.Link{Predecessor: &model.PredecessorSuccessor{
		ElementID:    "1",
		ElementType:  ptr(model.ElementTypeRoad),
		ContactPoint: ptr(model.ContactPointEnd),
	}}

	return &model.Document{
		Header: model.Header{RevMajor: 1, RevMinor: 7},
		Roads:  []model.Road{r1, r2, r3},
		Junctions: []model.Junction{{
			ID: "10",
			Connections: []model.Connection{{
				ID: "0", IncomingRoad: "1", ConnectingRoad: "3",
				LaneLinks: []model.JunctionLaneLink{{From: -1, To: -1}},
			}},
		}},
	}
}

func TestValidDocument(t *testing.T) {
	assert.Empty(t, validate.Document(validDocument()))
}

func TestIssues(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(d *model.Document)
		code   string
		path   string
	}{
		{
			"negative length",
			func(d *model.Document) { d.Roads[0].Length = -5 },
			validate.CodeDomainRange, "/OpenDRIVE/road[0]",
		},
		{
			"road id not uint32",
			func(d *model.Document) { d.Roads[1].ID = "A2" },
			validate.CodeInvalidFormat, "/OpenDRIVE/road[1]",
		},
		{
			"duplicate road id",
			func(d *model.Document) { d.Roads[1].ID = "1" },
			validate.CodeUniqueness, "/OpenDRIVE/road[1]",
		},
		{
			"contactPoint with elementS",
			func(d *model.Document) { d.Roads[1].Link.Predecessor.ElementS = ptr(model.Length(10)) },
			validate.CodeConflict, "/OpenDRIVE/road[1]/link/predecessor",
		},
		{
			"elementS on junction",
			func(d *model.Document) { d.Roads[0].Link.Successor.ElementS = ptr(model.Length(1)) },
			validate.CodeConflict, "/OpenDRIVE/road[0]/link/successor",
		},
		{
			"elementDir without elementS",
			func(d *model.Document) { d.Roads[0].Link.Successor.ElementDir = ptr(model.ElementDirPlus) },
			validate.CodeConflict, "/OpenDRIVE/road[0]/link/successor",
		},
		{
			"elementS beyond target",
			func(d *model.Document) {
				p := d.Roads[1].Link.Predecessor
				p.ContactPoint = nil
				p.ElementS = ptr(model.Length(101))
			},
			validate.CodeDomainRange, "/OpenDRIVE/road[1]/link/predecessor",
		},
		{
			"dangling link",
			func(d *model.Document) { d.Roads[1].Link.Predecessor.ElementID = "99" },
			validate.CodeDanglingReference, "/OpenDRIVE/road[1]/link/predecessor",
		},
		{
			"dangling junction",
			func(d *model.Document) {
				r4 := road("4", 10)
				r4.Junction = "11"
				d.Roads = append(d.Roads, r4)
			},
			validate.CodeDanglingReference, "/OpenDRIVE/road[3]",
		},
		{
			"dangling connecting road",
			func(d *model.Document) { addConnection(d, "42") },
			validate.CodeDanglingReference, "/OpenDRIVE/junction[0]/connection[1]",
		},
		{
			"connecting road outside junction",
			func(d *model.Document) { addConnection(d, "2") },
			validate.CodeConflict, "/OpenDRIVE/junction[0]/connection[1]",
		},
		{
			"junction member without connection",
			func(d *model.Document) {
				r4 := road("4", 10)
				r4.Junction = "10"
				d.Roads = append(d.Roads, r4)
			},
			validate.CodeConflict, "/OpenDRIVE/junction[0]",
		},
		{
			"virtual junction member without connection",
			func(d *model.Document) {
				d.Junctions[0].Type = ptr(model.JunctionTypeVirtual)
				d.Junctions[0].Connections = nil
			},
			"", "",
		},
		{
			"geometry outside header bounds",
			func(d *model.Document) {
				d.Header.SetBounds(&model.BoundingBox{North: 10, South: -10, East: 200, West: 0})
				d.Roads[2].PlanView.Geometries[0].Y = 11
			},
			validate.CodeDomainRange, "/OpenDRIVE/road[2]/planView/geometry[0]",
		},
		{
			"descending elevation",
			func(d *model.Document) {
				d.Roads[0].ElevationProfile = &model.ElevationProfile{Elevations: []model.Elevation{{S: 50}, {S: 10}}}
			},
			validate.CodeOrdering, "/OpenDRIVE/road[0]/elevationProfile/elevation[1]",
		},
		{
			"repeated superelevation s",
			func(d *model.Document) {
				d.Roads[0].LateralProfile = &model.LateralProfile{Superelevations: []model.Superelevation{{S: 5}, {S: 5}}}
			},
			validate.CodeOrdering, "/OpenDRIVE/road[0]/lateralProfile/superelevation[1]",
		},
		{
			"geometry beyond road",
			func(d *model.Document) {
				d.Roads[1].PlanView.Geometries = append(d.Roads[1].PlanView.Geometries,
					model.Geometry{S: 60, Shape: &model.Line{}})
			},
			validate.CodeDomainRange, "/OpenDRIVE/road[1]/planView/geometry[1]",
		},
		{
			"center lane id",
			func(d *model.Document) { d.Roads[0].Lanes.LaneSections[0].Center.Lanes[0].ID = 1 },
			validate.CodeDomainRange, "/OpenDRIVE/road[0]/lanes/laneSection[0]/center/lane[0]",
		},
		{
			"right lane id",
			func(d *model.Document) { d.Roads[0].Lanes.LaneSections[0].Right.Lanes[0].ID = 2 },
			validate.CodeDomainRange, "/OpenDRIVE/road[0]/lanes/laneSection[0]/right/lane[0]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDocument()
			tc.mutate(d)

			issues := validate.Document(d)
			if tc.code == "" {
				assert.Empty(t, issues)

				return
			}

			require.Len(t, issues, 1, "%v", issues)
			assert.Equal(t, tc.code, issues[0].Code)
			assert.Equal(t, tc.path, issues[0].Path)
		})
	}
}

func TestShapesMayShareS(t *testing.T) {
	d := validDocument()
	d.Roads[0].LateralProfile = &model.LateralProfile{Shapes: []model.Shape{{S: 0, T: -2}, {S: 0, T: 2}, {S: 30}}}

	assert.Empty(t, validate.Document(d))
}

func TestIssuesError(t *testing.T) {
	var iss validate.Issues
	for i := range 5 {
		iss = append(iss, validate.Issue{Code: validate.CodeOrdering, Path: fmt.Sprintf("/x[%d]", i)})
	}

	assert.Equal(t, "ordering at /x[0]; ordering at /x[1]; ordering at /x[2]; ... (total 5)", iss.Error())

	wrapped := fmt.Errorf("decode: %w", iss)
	got, ok := validate.AsIssues(wrapped)
	require.True(t, ok)
	assert.Len(t, got, 5)

	_, ok = validate.AsIssues(errors.New("other"))
	assert.False(t, ok)

	assert.Len(t, validate.ByCode(iss, validate.CodeOrdering), 5)
	assert.Empty(t, validate.ByCode(iss, validate.CodeConflict))
}
