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

// Package headers provides the concurrency-safe header store used by
// request and response envelopes.
package headers

import (
	"maps"
	"sync"
)

// Headers is a string-to-string map that tolerates concurrent readers and
// writers without external locking. Names are exact keys: "X-Trace" and
// "x-trace" are different headers.
//
// The zero value is ready to use. A nil *Headers reads as empty and ignores
// writes. A Headers must not be copied after first use.
type Headers struct {
	mu sync.RWMutex
	m  map[string]string
}

// New returns an empty store.
func New() *Headers {
	return &Headers{}
}

// From returns a store seeded with a copy of src.
func From(src map[string]string) *Headers {
	return &Headers{m: maps.Clone(src)}
}

// Set stores value under name, overwriting any previous value.
func (h *Headers) Set(name, value string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	if h.m == nil {
		h.m = make(map[string]string)
	}
	h.m[name] = value
	h.mu.Unlock()
}

// Get returns the value stored under name. ok is false when absent.
func (h *Headers) Get(name string) (value string, ok bool) {
	if h == nil {
		return "", false
	}
	h.mu.RLock()
	value, ok = h.m[name]
	h.mu.RUnlock()
	return value, ok
}

// Delete removes name. Deleting an absent header is a no-op.
func (h *Headers) Delete(name string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	delete(h.m, name)
	h.mu.Unlock()
}

// Len returns the number of stored headers.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.m)
}

// Snapshot returns a copy of every header. It never returns nil.
func (h *Headers) Snapshot() map[string]string {
	if h == nil {
		return map[string]string{}
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]string, len(h.m))
	maps.Copy(out, h.m)
	return out
}

// Range calls fn for each header until fn returns false. fn runs on a
// snapshot, so it may call back into h.
func (h *Headers) Range(fn func(name, value string) bool) {
	for k, v := range h.Snapshot() {
		if !fn(k, v) {
			return
		}
	}
}
