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

	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw kind prefix (may contain "*"); normalized in New.
	prefix string
	// val is the transport status; gRPC codes are kept as int until New.
	val int
}

type builder struct {
	// grpcDefaults maps an HTTP status to a gRPC code, seeded from defaultGRPC.
	grpcDefaults map[int]int

	// exact per-status overrides, highest precedence.
	httpOverride map[int]int
	grpcOverride map[int]int

	// kind prefix rules, compiled into segment tries.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// used when no tier matched at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		grpcDefaults: make(map[int]int, len(defaultGRPC)),
		httpOverride: make(map[int]int),
		grpcOverride: make(map[int]int),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
