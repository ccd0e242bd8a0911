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

package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment of a kind.
const Wildcard = "*"

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or is made of wildcards only.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie indexes dot-separated kind prefixes segment by segment and answers
// longest-prefix-match queries. Lookups never cross a segment boundary:
// "auth.tok" does not match a rule on "auth.token".
//
// A Trie is not safe for concurrent Insert. Once built it may be shared
// between goroutines for Match.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain.
	pattern string
	size    int
}

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix. Inserting the same prefix twice keeps
// the last value.
//
//	"storage.pg"
//	"auth.token.expired"
//	"auth.*.expired"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := split(prefix)
	if !ok || allWildcards(segs) {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	if !cur.hasVal {
		t.size++
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Len returns the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Match returns the value of the deepest rule matching k.
func (t *Trie[T]) Match(k string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(k)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched rule as it was
// inserted (wildcards included). An exact segment beats a wildcard at the
// same depth; a deeper wildcard match beats a shallower exact one.
func (t *Trie[T]) MatchWithPattern(k string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best, _ := t.walk(k, 0, 0, nil, -1)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// walk descends from t at byte offset off and returns the deepest node
// holding a value. Exact children are visited before the wildcard so ties go
// to the exact branch.
func (t *Trie[T]) walk(k string, off, depth int, best *Trie[T], bestDepth int) (*Trie[T], int) {
	if t.hasVal && depth > bestDepth {
		best, bestDepth = t, depth
	}
	if off >= len(k) {
		return best, bestDepth
	}
	end, ok := nextSegment(k, off)
	if !ok {
		return best, bestDepth
	}
	next := end
	if next < len(k) {
		next++ // skip '.'
	}
	if child, ok := t.children[k[off:end]]; ok {
		best, bestDepth = child.walk(k, next, depth+1, best, bestDepth)
	}
	if child, ok := t.children[Wildcard]; ok {
		best, bestDepth = child.walk(k, next, depth+1, best, bestDepth)
	}
	return best, bestDepth
}

// nextSegment validates the segment starting at off and returns its end.
func nextSegment(k string, off int) (int, bool) {
	i := off
	if c := k[i]; c < 'a' || c > 'z' {
		return 0, false
	}
	for i++; i < len(k) && k[i] != '.'; i++ {
		if !segmentChar(k[i]) {
			return 0, false
		}
	}
	return i, true
}

func split(prefix string) ([]string, bool) {
	if prefix == "" {
		return nil, false
	}
	segs := strings.Split(prefix, ".")
	for _, s := range segs {
		if !validSegment(s) {
			return nil, false
		}
	}
	return segs, true
}

func allWildcards(segs []string) bool {
	for _, s := range segs {
		if s != Wildcard {
			return false
		}
	}
	return true
}

// validSegment accepts "*" or [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == Wildcard {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if !segmentChar(seg[i]) {
			return false
		}
	}
	return true
}

func segmentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
