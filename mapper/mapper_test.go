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
	"net/http"
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(status int, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(status, kind.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%d) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				status, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(http.StatusBadRequest, 400, codes.InvalidArgument)
	check(http.StatusNotFound, 404, codes.NotFound)
	check(http.StatusServiceUnavailable, 503, codes.Unavailable)
	check(http.StatusCreated, 201, codes.OK)
	check(http.StatusPartialContent, 206, codes.OK) // by class
	check(0, 500, codes.Internal)
	check(-1, 500, codes.Internal)
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(503, codes.Unavailable),
		WithGRPCPrefix("storage.pg", codes.Internal),
		WithGRPCOverride(503, codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(503, "storage.pg.connect"); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}

	m2, _ := New(WithGRPCPrefix("storage.pg", codes.Internal))
	if got := m2.GRPCStatus(503, "storage.pg.connect"); got != codes.Internal {
		t.Fatalf("prefix must beat default; got %v", got)
	}
	if got := m2.GRPCStatus(503, "storage.redis"); got != codes.Unavailable {
		t.Fatalf("default expected for unmatched kind; got %v", got)
	}
}

func TestPriority_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithHTTPOverride(499, 408),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(499, kind.Empty); got != 408 {
		t.Fatalf("override must win; got %d", got)
	}
	if got := m.HTTPStatus(404, "storage.pg.connect"); got != 404 {
		t.Fatalf("a carrier status must win over kind rules; got %d", got)
	}
	if got := m.HTTPStatus(0, "storage.pg.connect"); got != 503 {
		t.Fatalf("kind rule expected for unset status; got %d", got)
	}
	if got := m.HTTPStatus(0, "auth"); got != 500 {
		t.Fatalf("fallback expected; got %d", got)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithHTTPPrefix("storage.pg.connect", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(0, "storage.pg.connect.timeout"); got != 599 {
		t.Fatalf("LPM failed: got %d, want 599", got)
	}
	m2, _ := New(WithHTTPPrefix("auth.jwt", 499))
	if got := m2.HTTPStatus(0, "auth.j"); got == 499 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("auth.*.expired", 419),
		WithHTTPPrefix("auth.token.expired", 401),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(0, "auth.token.expired"); got != 401 {
		t.Fatalf("exact must beat wildcard; got %d", got)
	}
	if got := m.HTTPStatus(0, "auth.session.expired"); got != 419 {
		t.Fatalf("wildcard match failed; got %d", got)
	}
	if got := m.HTTPStatus(0, "auth.expired"); got == 419 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(WithHTTPPrefix("  STORAGE/PG.CONNECT-TIMEOUT  ", 599))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(0, "storage.pg.connect_timeout"); got != 599 {
		t.Fatalf("normalized prefix should match; got %d", got)
	}
}

func TestInvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "a..b", "a.b.c.d.e", "9lives"} {
		if _, err := New(WithGRPCPrefix(p, codes.Internal)); err == nil {
			t.Fatalf("prefix %q must be rejected", p)
		}
	}
}

func TestWithFallback(t *testing.T) {
	m, err := New(WithFallback(http.StatusBadGateway, codes.Unknown))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(0, kind.Empty)
	if st.HTTP != 502 || st.GRPC != codes.Unknown {
		t.Fatalf("fallback not applied: %+v", st)
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithGRPCPrefix("storage.pg", codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(0, "storage.pg.connect")
	if !strings.Contains(exp, "source=prefix") {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="storage.pg"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc:") || !strings.Contains(exp, "http:") {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}
}

func TestDefault_Shared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default must return the same snapshot")
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("storage.pg", 503),
		WithGRPCOverride(499, codes.Canceled),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(0, "storage.pg.connect")
				_ = m.Status(499, kind.Empty)
				_ = m.Status(400, kind.Validation)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(400, kind.Validation)
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(
		WithHTTPPrefix("storage.pg", 503),
		WithGRPCPrefix("storage.pg", codes.Unavailable),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(0, "storage.pg.connect")
	}
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
