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

// Package mapper projects the status carried by basic errors and responses
// onto transport statuses for HTTP and gRPC.
//
// # Overview
//
// A carrier (requests.Error, response.Response) holds two things a transport
// cares about:
//
//  1. an HTTP-style status code, where zero or negative means "unset";
//  2. an optional kind (e.g. "storage.pg.connect_timeout").
//
// HTTP handlers mostly use the status as is. gRPC servers need a
// codes.Code, and some deployments rewrite statuses at the edge. A Mapper
// does both in a way that is:
//
//   - immutable: a snapshot, safe for concurrent reuse;
//   - overridable per status;
//   - prefix-aware on the kind;
//   - explainable, through Explain.
//
// # Resolution model
//
// HTTP: override for the status, then the status itself, then the kind
// rules, then 500.
//
// gRPC: override for the status, then the kind rules, then the built-in
// HTTP -> gRPC table, then by class (2xx/3xx -> OK), then codes.Internal.
//
// Kind rules are segment-aware: "*" matches exactly one segment and the
// longest matching rule wins.
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(499, http.StatusRequestTimeout),
//	    mapper.WithGRPCPrefix("storage.pg", codes.Unavailable),
//	)
//	if err != nil {
//	    // invalid prefix
//	}
//	st := m.Status(err.StatusCode(), err.ErrorKind())
//
// All inputs are copied by New.
package mapper
