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
	"fmt"
	"testing"
)

func TestInsertAndMatch(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("storage.pg", 503))
	must(t, tr.Insert("auth.token.expired", 401))
	must(t, tr.Insert("request.validation", 400))

	tests := []struct {
		kind    string
		want    int
		pattern string
	}{
		{"storage.pg.connect", 503, "storage.pg"},
		{"storage.pg", 503, "storage.pg"},
		{"auth.token.expired", 401, "auth.token.expired"},
		{"request.validation.size", 400, "request.validation"},
	}
	for _, tt := range tests {
		v, ok, p := tr.MatchWithPattern(tt.kind)
		if !ok || v != tt.want || p != tt.pattern {
			t.Fatalf("%s => ok=%v v=%v p=%q; want %v %q", tt.kind, ok, v, p, tt.want, tt.pattern)
		}
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
}

func TestSegmentBoundary(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.token", 401))
	if _, ok := tr.Match("auth.tok"); ok {
		t.Fatal("match must not cross a segment boundary")
	}
	if _, ok := tr.Match("auth.tokens"); ok {
		t.Fatal("match must not extend a segment")
	}
	if _, ok := tr.Match("auth"); ok {
		t.Fatal("a shorter kind must not match a longer rule")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.*.expired", 498))
	must(t, tr.Insert("auth.token.expired", 401))

	if v, ok, p := tr.MatchWithPattern("auth.token.expired"); !ok || v != 401 || p != "auth.token.expired" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("auth.session.expired.idle"); !ok || v != 498 || p != "auth.*.expired" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("auth.expired"); ok {
		t.Fatal("wildcard must match exactly one segment, not zero")
	}
}

func TestLPM_PrefersDeeperWildcard(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose the deeper wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("storage.pg", 1))
	must(t, tr.Insert("storage.pg", 2))
	if v, _ := tr.Match("storage.pg"); v != 2 {
		t.Fatalf("last insert must win, got %d", v)
	}
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "1abc", "a-b"} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", p)
		}
	}
	must(t, tr.Insert("a.b", 1))
	for _, k := range []string{"UPPER.case", "a..b", ".a"} {
		if _, ok := tr.Match(k); ok {
			t.Fatalf("Match(%q) must be false", k)
		}
	}

	var nilTrie *Trie[int]
	if err := nilTrie.Insert("a.b", 1); err == nil {
		t.Fatal("insert into a nil trie must fail")
	}
	if _, ok := nilTrie.Match("a.b"); ok {
		t.Fatal("nil trie must not match")
	}
}

func BenchmarkTrieMatch(b *testing.B) {
	tr := New[int]()
	for i := 0; i < 256; i++ {
		if err := tr.Insert(fmt.Sprintf("area%d.sub%d", i%16, i), i); err != nil {
			b.Fatal(err)
		}
	}
	must(b, tr.Insert("area3.*.deep", 1))
	kinds := []string{"area3.sub3.deep.x", "area7.sub23", "missing.kind", "area1.sub999"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Match(kinds[i%len(kinds)])
	}
}

func must(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %v", err)
	}
}
