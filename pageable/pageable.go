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

// Package pageable holds the pagination request payload and a generic
// paged result that satisfies apis.Page.
package pageable

import (
	"strings"

	"github.com/goccy/go-json"
)

// Defaults applied by New and by the zero-argument constructors.
const (
	DefaultPage = 0
	DefaultSize = 10
)

// Sort directions accepted by Pageable.Direction.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Pageable is the payload of a paginated request: which page, how big, how
// to sort and an optional free-text query.
//
// Sort, Direction and Query are empty when unset. Validation tags are
// checked by request.Validate.
type Pageable struct {
	Page      int    `json:"page" validate:"gte=0"`
	Size      int    `json:"size" validate:"gte=1,lte=1000"`
	Sort      string `json:"sort,omitempty"`
	Direction string `json:"direction,omitempty" validate:"omitempty,oneof=asc desc ASC DESC"`
	Query     string `json:"query,omitempty"`
}

// New returns a Pageable with page 0 and size 10.
func New() Pageable {
	return Pageable{Page: DefaultPage, Size: DefaultSize}
}

// UnmarshalJSON decodes p on top of New, so fields absent from the document
// keep their defaults.
func (p *Pageable) UnmarshalJSON(b []byte) error {
	type plain Pageable
	v := plain(New())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Pageable(v)
	return nil
}

// Of returns a Pageable for the given page and size.
func Of(page, size int) Pageable {
	return Pageable{Page: page, Size: size}
}

// Sorted returns a default Pageable sorted by sort in direction.
func Sorted(sort, direction string) Pageable {
	p := New()
	p.Sort = sort
	p.Direction = direction
	return p
}

// Full returns a Pageable with every field set.
func Full(page, size int, sort, direction, query string) Pageable {
	return Pageable{Page: page, Size: size, Sort: sort, Direction: direction, Query: query}
}

// Offset returns the index of the first element of the page.
func (p Pageable) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	return p.Page * p.Size
}

// Descending reports whether Direction asks for descending order.
func (p Pageable) Descending() bool {
	return strings.EqualFold(p.Direction, Desc)
}
