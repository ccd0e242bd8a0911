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
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
	"nishisan.dev/requests/mapper/internal/segmenttrie"
)

// Sources reported by Explain.
const (
	SourceOverride = "override"
	SourceStatus   = "status"
	SourcePrefix   = "prefix"
	SourceDefault  = "default"
	SourceClass    = "class"
	SourceFallback = "fallback"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with the library HTTP -> gRPC table.
//  2. Apply user options (defaults, overrides, kind prefix rules).
//  3. Normalize kind prefixes and compile them into segment tries.
//  4. Freeze everything into fresh allocations.
//
// Errors indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := compile("HTTP", b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := compile("gRPC", b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		grpcDefault:  freezeCodes(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeCodes(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultMapper apis.Mapper
)

// Default returns the shared mapper built with no options.
func Default() apis.Mapper {
	defaultOnce.Do(func() {
		m, err := New()
		if err != nil {
			panic(err) // library defaults are static
		}
		defaultMapper = m
	})
	return defaultMapper
}

// mapper resolves carrier statuses and kinds to transport statuses. It is
// immutable after New and safe for concurrent use.
type mapper struct {
	// grpcDefault projects an HTTP status onto a gRPC code.
	grpcDefault map[int]codes.Code

	// exact per-status overrides.
	httpOverride map[int]int
	grpcOverride map[int]codes.Code

	// kind longest-prefix-match rules; nil when none were given.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves the HTTP status for a carrier.
//
// Resolution order:
//  1. exact override for the status;
//  2. the status itself, when positive;
//  3. longest-prefix-match rule on the kind;
//  4. fallback (500).
func (m *mapper) HTTPStatus(status int, k kind.Kind) int {
	v, _, _ := m.resolveHTTP(status, k)
	return v
}

// GRPCStatus resolves the gRPC code for a carrier.
//
// Resolution order:
//  1. exact override for the status;
//  2. longest-prefix-match rule on the kind;
//  3. per-status default table;
//  4. class: a positive status below 400 is OK;
//  5. fallback (codes.Internal).
func (m *mapper) GRPCStatus(status int, k kind.Kind) codes.Code {
	v, _, _ := m.resolveGRPC(status, k)
	return v
}

// Status resolves both transports from the same inputs.
func (m *mapper) Status(status int, k kind.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(status, k),
		GRPC: m.GRPCStatus(status, k),
	}
}

// Explain describes which tier produced each transport status:
//
//	status=0 kind="storage.pg.connect_timeout"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=prefix pattern="storage.pg" -> UNAVAILABLE(14)
//
// It is meant for logs and tests, not for machine parsing.
func (m *mapper) Explain(status int, k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%d kind=%q\n", status, k)

	hv, hsrc, hpat := m.resolveHTTP(status, k)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", hsrc, patternSuffix(hpat), hv)

	gv, gsrc, gpat := m.resolveGRPC(status, k)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s", gsrc, patternSuffix(gpat), grpcName(gv))

	return b.String()
}

func (m *mapper) resolveHTTP(status int, k kind.Kind) (int, string, string) {
	if v, ok := m.httpOverride[status]; ok {
		return v, SourceOverride, ""
	}
	if status > 0 {
		return status, SourceStatus, ""
	}
	if k != kind.Empty {
		if v, ok, pat := m.httpTrie.MatchWithPattern(string(k)); ok {
			return v, SourcePrefix, pat
		}
	}
	return m.fallbackHTTP, SourceFallback, ""
}

func (m *mapper) resolveGRPC(status int, k kind.Kind) (codes.Code, string, string) {
	if v, ok := m.grpcOverride[status]; ok {
		return v, SourceOverride, ""
	}
	if k != kind.Empty {
		if v, ok, pat := m.grpcTrie.MatchWithPattern(string(k)); ok {
			return v, SourcePrefix, pat
		}
	}
	if v, ok := m.grpcDefault[status]; ok {
		return v, SourceDefault, ""
	}
	if status > 0 && status < 400 {
		return codes.OK, SourceClass, ""
	}
	return m.fallbackGRPC, SourceFallback, ""
}

func patternSuffix(pat string) string {
	if pat == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", pat)
}
