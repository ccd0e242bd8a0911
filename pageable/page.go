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

import "nishisan.dev/requests/apis"

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items         []T   `json:"items"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	Pages         int   `json:"totalPages"`
}

var _ apis.Page = Page[any]{}

// NewPage builds the page described by req holding items out of total
// elements. The page count is derived from total and req.Size.
func NewPage[T any](items []T, req Pageable, total int64) Page[T] {
	return Page[T]{
		Items:         items,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		Pages:         pageCount(total, req.Size),
	}
}

// PageSize implements apis.Page.
func (p Page[T]) PageSize() int { return p.Size }

// TotalPages implements apis.Page.
func (p Page[T]) TotalPages() int { return p.Pages }

// Last reports whether this is the final page.
func (p Page[T]) Last() bool { return p.Number+1 >= p.Pages }

func pageCount(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
