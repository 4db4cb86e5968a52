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


package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/xodr/model"
)

func TestInitialBoundingBox(t *testing.T) {
	initial := model.InitialBoundingBox()
	assert.True(t, initial.Empty())

	initial.ExpandWithXY(3, -4)
	assert.False(t, initial.Empty())
	assert.Equal(t, &model.BoundingBox{North: -4, South: -4, East: 3, West: 3}, initial)
}

func TestBoundingBox_EqualWithin(t *testing.T) {
	bbox1 := &model.BoundingBox{North: 120.5, South: -30.25, East: 410, West: -12}
	bbox2 := &model.BoundingBox{
		North: bbox1.North + model.Length(model.E6),
		South: bbox1.South + model.Length(model.E6),
		East:  bbox1.East + model.Length(model.E6),
		West:  bbox1.West + model.Length(model.E6),
	}

	assert.True(t, bbox1.EqualWithin(bbox2, model.E3))
	assert.False(t, bbox1.EqualWithin(bbox2, model.E9))
}

func TestBoundingBox_Contains(t *testing.T) {
	bbox := &model.BoundingBox{North: 100, South: -100, East: 50, West: -50}

	testCases := []struct {
		name     string
		x        model.Length
		y        model.Length
		expected bool
	}{
		{"south/west", bbox.West, bbox.South, true},
		{"north/west", bbox.West, bbox.North, true},
		{"north/east", bbox.East, bbox.North, true},
		{"south/east", bbox.East, bbox.South, true},
		{"center", 0, 0, true},

		{"west of", bbox.West - model.Millimeter, 0, false},
		{"east of", bbox.East + model.Millimeter, 0, false},
		{"north of", 0, bbox.North + model.Millimeter, false},
		{"south of", 0, bbox.South - model.Millimeter, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bbox.Contains(tc.x, tc.y))
		})
	}
}

func TestBoundingBox_ExpandWithBoundingBox(t *testing.T) {
	b := &model.BoundingBox{North: 10, South: 0, East: 10, West: 0}
	b.ExpandWithBoundingBox(&model.BoundingBox{North: 5, South: -5, East: 20, West: 5})

	assert.Equal(t, &model.BoundingBox{North: 10, South: -5, East: 20, West: 0}, b)
	assert.Equal(t, "[(0, -5) (20, 10)]", b.String())
}

func TestHeaderBounds(t *testing.T) {
	var h model.Header
	assert.Nil(t, h.Bounds())

	b := &model.BoundingBox{North: 1, South: 2, East: 3, West: 4}
	h.SetBounds(b)
	assert.Equal(t, b, h.Bounds())

	h.SetBounds(nil)
	assert.Nil(t, h.North)
	assert.Nil(t, h.Bounds())
}

func TestDocumentExtent(t *testing.T) {
	var d model.Document
	assert.Nil(t, d.Extent())

	d.Roads = []model.Road{
		{PlanView: model.PlanView{Geometries: []model.Geometry{{X: 1, Y: 2}, {X: -3, Y: 8}}}},
		{PlanView: model.PlanView{Geometries: []model.Geometry{{X: 10, Y: -1}}}},
	}

	assert.Equal(t, &model.BoundingBox{North: 8, South: -1, East: 10, West: -3}, d.Extent())
}
