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

package mapper

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"nishisan.dev/requests/kind"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden verifies Explain() output is stable.
// Update golden with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithGRPCPrefix("storage.pg", codes.Unavailable),
		WithHTTPOverride(499, 408),
		WithGRPCOverride(499, codes.Canceled),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		status int
		kind   kind.Kind
	}{
		{0, "storage.pg.connect_timeout"},
		{499, kind.Empty},
		{404, "order.not_found"},
		{418, kind.Empty},
	}
	parts := make([]string, 0, len(cases))
	for _, c := range cases {
		parts = append(parts, m.Explain(c.status, c.kind))
	}
	got := strings.Join(parts, "\n---\n") + "\n"

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	normalize := func(s string) string { return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n") }
	if normalize(string(wantBytes)) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", wantBytes, got)
	}
}
