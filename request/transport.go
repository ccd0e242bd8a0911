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

package request

import (
	"strings"

	"github.com/google/uuid"
)

// Well-known header names read by FromHeaders.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"
)

// FromHeaders builds a request for payload as received by a transport: every
// header is copied as is, the request id comes from HeaderRequestID (a random
// UUID when absent) and the trace id from HeaderTraceID. The two well-known
// names are matched case-insensitively, since transports canonicalize them
// differently.
func FromHeaders[T any](payload T, hdr map[string]string) *Request[T] {
	r := New(payload)
	for k, v := range hdr {
		r.headers.Set(k, v)
	}
	r.requestID = lookup(hdr, HeaderRequestID)
	if r.requestID == "" {
		r.requestID = uuid.NewString()
	}
	r.traceID = lookup(hdr, HeaderTraceID)
	return r
}

func lookup(hdr map[string]string, name string) string {
	if v, ok := hdr[name]; ok {
		return v
	}
	for k, v := range hdr {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
