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

package response

import (
	"reflect"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/headers"
)

// Response is the outbound envelope: a generated response id, the id of the
// request it answers, a payload of type T, an optional status code, headers
// and pagination metadata derived from the payload.
//
// Size and TotalPages are computed once, when the response is built with
// New or NewFor. Replacing the payload afterwards does not recompute them.
//
// A Response must not be copied after first use.
type Response[T any] struct {
	responseID      string
	sourceRequestID string
	traceID         string
	payload         T
	status          int
	headers         headers.Headers
	size            int64
	totalPages      int64
}

var _ apis.StatusCarrier = (*Response[any])(nil)

// New returns a response carrying payload with a fresh random (v4) id.
func New[T any](payload T) *Response[T] {
	r := &Response[T]{
		responseID: uuid.NewString(),
		payload:    payload,
	}
	r.size, r.totalPages = derive(payload)
	return r
}

// NewFor returns a response to the request identified by sourceRequestID.
func NewFor[T any](sourceRequestID string, payload T) *Response[T] {
	r := New(payload)
	r.sourceRequestID = sourceRequestID
	return r
}

// FromRequest returns a response answering req: its request id and trace id
// are copied over. A nil req behaves like New.
func FromRequest[T any](req apis.Envelope, payload T) *Response[T] {
	r := New(payload)
	if req != nil {
		r.sourceRequestID = req.RequestID()
		r.traceID = req.TraceID()
	}
	return r
}

// derive computes size and total pages for payload:
//   - apis.Page: its page size and total pages;
//   - slice, array or map (through pointers): its length, no pages;
//   - anything else, nil included: zero.
func derive(payload any) (size, totalPages int64) {
	if payload == nil {
		return 0, 0
	}
	if p, ok := payload.(apis.Page); ok {
		rv := reflect.ValueOf(payload)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return 0, 0
		}
		return int64(p.PageSize()), int64(p.TotalPages())
	}
	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, 0
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return int64(rv.Len()), 0
	}
	return 0, 0
}

// ResponseID returns the id generated at construction.
func (r *Response[T]) ResponseID() string { return r.responseID }

// SetResponseID replaces the generated id.
func (r *Response[T]) SetResponseID(id string) { r.responseID = id }

// SourceRequestID returns the id of the request this response answers.
func (r *Response[T]) SourceRequestID() string { return r.sourceRequestID }

// SetSourceRequestID sets the id of the request this response answers.
func (r *Response[T]) SetSourceRequestID(id string) { r.sourceRequestID = id }

// TraceID returns the trace id.
func (r *Response[T]) TraceID() string { return r.traceID }

// SetTraceID sets the trace id.
func (r *Response[T]) SetTraceID(id string) { r.traceID = id }

// Payload returns the payload.
func (r *Response[T]) Payload() T { return r.payload }

// SetPayload replaces the payload. Size and total pages are left as they
// were computed at construction.
func (r *Response[T]) SetPayload(p T) { r.payload = p }

// StatusCode returns the status code, 0 when unset.
func (r *Response[T]) StatusCode() int { return r.status }

// SetStatusCode sets the status the transport should use. Zero or negative
// leaves the transport status untouched.
func (r *Response[T]) SetStatusCode(code int) { r.status = code }

// TransportStatus implements apis.StatusCarrier.
func (r *Response[T]) TransportStatus() (int, bool) {
	if r == nil || r.status <= 0 {
		return 0, false
	}
	return r.status, true
}

// Size returns the number of elements derived from the payload.
func (r *Response[T]) Size() int64 { return r.size }

// TotalPages returns the page count derived from the payload.
func (r *Response[T]) TotalPages() int64 { return r.totalPages }

// SetTotalPages overrides the derived page count.
func (r *Response[T]) SetTotalPages(n int64) { r.totalPages = n }

// AddHeader stores value under name, replacing any previous value.
func (r *Response[T]) AddHeader(name, value string) { r.headers.Set(name, value) }

// Header returns the value stored under the exact name.
func (r *Response[T]) Header(name string) (string, bool) { return r.headers.Get(name) }

// Headers returns a copy of all headers.
func (r *Response[T]) Headers() map[string]string { return r.headers.Snapshot() }

type wire[T any] struct {
	ResponseID      string            `json:"responseId"`
	SourceRequestID string            `json:"sourceRequestId,omitempty"`
	TraceID         string            `json:"traceId,omitempty"`
	Payload         T                 `json:"payload"`
	StatusCode      int               `json:"statusCode,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	Size            int64             `json:"size"`
	TotalPages      int64             `json:"totalPages"`
}

// MarshalJSON renders the envelope with camelCase field names.
func (r *Response[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire[T]{
		ResponseID:      r.responseID,
		SourceRequestID: r.sourceRequestID,
		TraceID:         r.traceID,
		Payload:         r.payload,
		StatusCode:      r.status,
		Headers:         r.headers.Snapshot(),
		Size:            r.size,
		TotalPages:      r.totalPages,
	})
}

// UnmarshalJSON restores an envelope produced by MarshalJSON. Size and
// total pages are taken from the document, not derived.
func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var w wire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	r.responseID = w.ResponseID
	r.sourceRequestID = w.SourceRequestID
	r.traceID = w.TraceID
	r.payload = w.Payload
	r.status = w.StatusCode
	r.size = w.Size
	r.totalPages = w.TotalPages
	for k, v := range w.Headers {
		r.headers.Set(k, v)
	}
	return nil
}
