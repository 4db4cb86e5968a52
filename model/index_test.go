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
	"github.com/stretchr/testify/require"

	"m4o.io/xodr/model"
)

func ptr[T any](v T) *T { return &v }

func indexedDocument() *model.Document {
	return &model.Document{
		Roads: []model.Road{
			{ID: "1", Junction: model.NoJunction},
			{ID: "2", Junction: "100"},
			{ID: "3", Junction: "100"},
		},
		Junctions: []model.Junction{{ID: "100"}},
	}
}

func TestIndex(t *testing.T) {
	d := indexedDocument()

	ix, err := model.NewIndex(d)
	require.NoError(t, err)

	rd, ok := ix.Road("2")
	require.True(t, ok)
	assert.Same(t, &d.Roads[1], rd)

	_, ok = ix.Road("100")
	assert.False(t, ok)

	j, ok := ix.Junction("100")
	require.True(t, ok)
	assert.Same(t, &d.Junctions[0], j)

	assert.Equal(t, []*model.Road{&d.Roads[1], &d.Roads[2]}, ix.Members("100"))
	assert.Empty(t, ix.Members("1"))
}

func TestIndexDuplicate(t *testing.T) {
	d := indexedDocument()
	d.Roads = append(d.Roads, model.Road{ID: "1"})

	_, err := model.NewIndex(d)
	assert.ErrorIs(t, err, model.ErrDuplicateID)
}

func TestIndexResolve(t *testing.T) {
	d := indexedDocument()

	ix, err := model.NewIndex(d)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		link     model.PredecessorSuccessor
		road     *model.Road
		junction *model.Junction
	}{
		{"road", model.PredecessorSuccessor{ElementID: "1", ElementType: ptr(model.ElementTypeRoad)}, &d.Roads[0], nil},
		{"junction", model.PredecessorSuccessor{ElementID: "100", ElementType: ptr(model.ElementTypeJunction)}, nil, &d.Junctions[0]},
		{"untyped road", model.PredecessorSuccessor{ElementID: "3"}, &d.Roads[2], nil},
		{"untyped junction", model.PredecessorSuccessor{ElementID: "100"}, nil, &d.Junctions[0]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, err := ix.Resolve(&tc.link)
			require.NoError(t, err)
			assert.Equal(t, tc.road, target.Road)
			assert.Equal(t, tc.junction, target.Junction)
		})
	}

	for _, dangling := range []model.PredecessorSuccessor{
		{ElementID: "9"},
		{ElementID: "100", ElementType: ptr(model.ElementTypeRoad)},
		{ElementID: "1", ElementType: ptr(model.ElementTypeJunction)},
	} {
		_, err := ix.Resolve(&dangling)
		assert.ErrorIs(t, err, model.ErrDanglingReference)
	}
}

func TestRoadDefaults(t *testing.T) {
	rd := model.Road{ID: "7", Junction: model.NoJunction}
	assert.Equal(t, model.RightHandTraffic, rd.TrafficRule())
	assert.Nil(t, rd.Rule)
	assert.False(t, rd.InJunction())

	rd.Rule = ptr(model.LeftHandTraffic)
	assert.Equal(t, model.LeftHandTraffic, rd.TrafficRule())

	var j model.Junction
	assert.Equal(t, model.JunctionTypeDefault, j.Kind())

	var p model.ParamPoly3
	assert.Equal(t, model.RangeNormalized, p.Range())
}
