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
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/headers"
	"nishisan.dev/requests/pageable"
)

// Request is the inbound envelope: caller-assigned identifiers, a payload of
// type T, headers and an optional credential.
//
// The zero value is ready to use and must not be copied after first use.
// Headers are safe for concurrent access; the other fields follow the usual
// rule of one writer at a time.
type Request[T any] struct {
	requestID  string
	traceID    string
	payload    T
	headers    headers.Headers
	credential apis.Credential
}

var _ apis.Envelope = (*Request[any])(nil)

// New returns a request carrying payload.
func New[T any](payload T) *Request[T] {
	return &Request[T]{payload: payload}
}

// NewWithID returns a request carrying payload under the given id.
func NewWithID[T any](requestID string, payload T) *Request[T] {
	r := New(payload)
	r.requestID = requestID
	return r
}

// NewPageable returns a paged request with the given page and size and no
// sort, direction or query.
func NewPageable(page, size int) *Request[pageable.Pageable] {
	return New(pageable.Of(page, size))
}

// NewPageableQuery returns a fully specified paged request.
func NewPageableQuery(page, size int, sort, direction, query string) *Request[pageable.Pageable] {
	return New(pageable.Full(page, size, sort, direction, query))
}

// RequestID returns the request id. Empty until assigned.
func (r *Request[T]) RequestID() string {
	if r == nil {
		return ""
	}
	return r.requestID
}

// SetRequestID assigns the request id.
func (r *Request[T]) SetRequestID(id string) { r.requestID = id }

// TraceID returns the trace id. Empty until assigned.
func (r *Request[T]) TraceID() string {
	if r == nil {
		return ""
	}
	return r.traceID
}

// SetTraceID assigns the trace id.
func (r *Request[T]) SetTraceID(id string) { r.traceID = id }

// Payload returns the payload.
func (r *Request[T]) Payload() T { return r.payload }

// SetPayload replaces the payload.
func (r *Request[T]) SetPayload(p T) { r.payload = p }

// AddHeader stores value under name, replacing any previous value.
func (r *Request[T]) AddHeader(name, value string) {
	r.headers.Set(name, value)
}

// Header returns the value stored under the exact name.
func (r *Request[T]) Header(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.headers.Get(name)
}

// Headers returns a copy of all headers.
func (r *Request[T]) Headers() map[string]string {
	if r == nil {
		return map[string]string{}
	}
	return r.headers.Snapshot()
}

// Credential returns the attached credential or nil.
func (r *Request[T]) Credential() apis.Credential {
	if r == nil {
		return nil
	}
	return r.credential
}

// SetCredential attaches a credential.
func (r *Request[T]) SetCredential(c apis.Credential) { r.credential = c }
