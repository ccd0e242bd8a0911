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

package apis

import (
	"google.golang.org/grpc/codes"
	"nishisan.dev/requests/kind"
)

// StatusCarrier is the capability the response-status adapters look for.
//
// Both response envelopes and basic errors implement it. The adapters call
// this single method instead of switching on concrete types.
type StatusCarrier interface {
	// TransportStatus returns the numeric status to put on the transport
	// response. ok is false when the status is unset (zero or negative); in
	// that case the transport status must be left untouched.
	TransportStatus() (code int, ok bool)
}

// Mapper is an immutable, concurrency-safe view of the status rules used
// when an HTTP-style status has to be projected onto another transport
// (gRPC), or when an error carries no status at all.
type Mapper interface {
	// HTTPStatus returns the HTTP status for a carrier status and kind.
	HTTPStatus(status int, k kind.Kind) int

	// GRPCStatus returns the gRPC code for a carrier status and kind.
	GRPCStatus(status int, k kind.Kind) codes.Code

	// Status resolves both in a single call.
	Status(status int, k kind.Kind) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(status int, k kind.Kind) string
}

// Status is a resolved pair of transport statuses for a single carrier.
type Status struct {
	HTTP int        // net/http compatible status.
	GRPC codes.Code // gRPC status code.
}
