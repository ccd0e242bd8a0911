/*
   Copyright 2025 The Nishisan Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package pageable

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Empty(t, p.Sort)
	assert.Empty(t, p.Direction)
	assert.Empty(t, p.Query)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Pageable{Page: 2, Size: 25}, Of(2, 25))
	assert.Equal(t, Pageable{Page: 0, Size: 10, Sort: "name", Direction: "desc"}, Sorted("name", "desc"))
	assert.Equal(t, Pageable{Page: 1, Size: 5, Sort: "id", Direction: "asc", Query: "foo"}, Full(1, 5, "id", "asc", "foo"))
}

func TestOffsetAndDirection(t *testing.T) {
	assert.Equal(t, 0, New().Offset())
	assert.Equal(t, 50, Of(2, 25).Offset())
	assert.True(t, Sorted("id", "DESC").Descending())
	assert.False(t, Sorted("id", "asc").Descending())
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"exact", 30, 10, 3},
		{"remainder", 31, 10, 4},
		{"empty", 0, 10, 0},
		{"zero size", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := NewPage([]int{1, 2}, Of(0, tt.size), tt.total)
			assert.Equal(t, tt.want, pg.TotalPages())
			assert.Equal(t, tt.size, pg.PageSize())
		})
	}
}

func TestPage_Last(t *testing.T) {
	assert.False(t, NewPage([]int{1}, Of(0, 10), 31).Last())
	assert.True(t, NewPage([]int{1}, Of(3, 10), 31).Last())
}

func TestUnmarshalJSON_KeepsDefaults(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Pageable
	}{
		{"empty", `{}`, New()},
		{"page only", `{"page":3}`, Pageable{Page: 3, Size: 10}},
		{"explicit size", `{"size":50,"sort":"id","direction":"desc"}`, Pageable{Size: 50, Sort: "id", Direction: "desc"}},
		{"explicit zero", `{"size":0}`, Pageable{Size: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pageable
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &p))
			assert.Equal(t, tt.want, p)
		})
	}

	var p Pageable
	assert.Error(t, json.Unmarshal([]byte(`{"size":"ten"}`), &p))
}
