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

package requests

import (
	"maps"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
)

// DefaultStatus is the status every basic error starts with.
const DefaultStatus = http.StatusInternalServerError

// Error is the recoverable basic error: an application-level failure that
// callers are expected to return, inspect and translate into a response.
//
// It carries:
//   - a human message and an optional wrapped cause;
//   - the originating request, when known;
//   - a numeric status code (500 unless set otherwise);
//   - an optional Kind telling concrete variants apart;
//   - a details mapping for structured diagnostic context;
//   - the stack captured at construction, printed by PrintStackTrace.
//
// Unlike most value types in this module, Error is mutable: Detail and the
// setters change the receiver and return it, so details can be composed at
// the call site before the error is returned. An Error is meant to be built
// and raised by one goroutine.
type Error struct {
	carrier
}

var (
	_ apis.BasicError   = (*Error)(nil)
	_ apis.ViewProvider = (*Error)(nil)
)

// New returns a basic error with the given message and options applied in
// order.
//
// Usage:
//
//	return requests.New("order not found",
//	    requests.WithStatus(http.StatusNotFound),
//	    requests.WithKind("order.not_found"),
//	    requests.WithRequest(req),
//	).Detail("orderId", id)
func New(msg string, opts ...Option) *Error {
	e := &Error{carrier: newCarrier(msg)}
	e.apply(opts)
	return e
}

// Wrap returns a basic error with msg that wraps cause. If msg is empty the
// cause's text is used as the message.
func Wrap(cause error, msg string, opts ...Option) *Error {
	e := &Error{carrier: newCarrier(msg)}
	e.cause = cause
	e.apply(opts)
	return e
}

// Error implements the error interface.
//
// The format is:
//
//	<message>
//	<kind>: <message>
//	<kind>: <message>: <cause>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.text()
}

// Detail stores value under key and returns e itself, so calls chain:
//
//	err.Detail("field", "size").Detail("max", 1000)
//
// A repeated key keeps the last value.
func (e *Error) Detail(key string, value any) *Error {
	e.put(key, value)
	return e
}

// TransportStatus implements apis.StatusCarrier: the status and whether it
// is set (positive). A nil *Error reports unset.
func (e *Error) TransportStatus() (int, bool) {
	if e == nil {
		return 0, false
	}
	return e.transportStatus()
}

// Unchecked returns the unchecked variant carrying the same data. The
// details map is copied; the stack of e is kept.
func (e *Error) Unchecked() *RuntimeError {
	return &RuntimeError{carrier: e.clone()}
}

// carrier holds the data contract shared by Error and RuntimeError.
type carrier struct {
	msg     string
	cause   error
	request apis.Envelope
	status  int
	kind    kind.Kind
	details map[string]any
	stack   pkgerrors.StackTrace
}

func newCarrier(msg string) carrier {
	return carrier{
		msg:     msg,
		status:  DefaultStatus,
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

func (c *carrier) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func (c *carrier) put(key string, value any) {
	if c.details == nil {
		c.details = make(map[string]any)
	}
	c.details[key] = value
}

func (c *carrier) clone() carrier {
	cp := *c
	cp.details = maps.Clone(c.details)
	if cp.details == nil {
		cp.details = make(map[string]any)
	}
	return cp
}

func (c *carrier) text() string {
	s := c.Message()
	if c.kind != kind.Empty {
		s = string(c.kind) + ": " + s
	}
	if c.cause != nil && c.msg != "" {
		s += ": " + c.cause.Error()
	}
	return s
}

// Message returns the human message. When no message was given it falls
// back to the cause's text.
func (c *carrier) Message() string {
	if c.msg == "" && c.cause != nil {
		return c.cause.Error()
	}
	return c.msg
}

// Unwrap returns the wrapped cause for errors.Is / errors.As.
func (c *carrier) Unwrap() error { return c.cause }

// Cause returns the wrapped cause or nil.
func (c *carrier) Cause() error { return c.cause }

// StatusCode returns the raw status code.
func (c *carrier) StatusCode() int { return c.status }

// SetStatusCode replaces the status code. Zero or negative values mark the
// status as unset: transports will leave their own status untouched.
func (c *carrier) SetStatusCode(code int) { c.status = code }

func (c *carrier) transportStatus() (int, bool) {
	if c.status <= 0 {
		return 0, false
	}
	return c.status, true
}

// Request returns the originating request, or nil.
func (c *carrier) Request() apis.Envelope { return c.request }

// SetRequest attaches the originating request.
func (c *carrier) SetRequest(req apis.Envelope) { c.request = req }

// ErrorKind returns the variant tag.
func (c *carrier) ErrorKind() kind.Kind { return c.kind }

// Details returns the live details mapping. It is never nil.
func (c *carrier) Details() map[string]any {
	if c.details == nil {
		c.details = make(map[string]any)
	}
	return c.details
}

// ErrorView implements apis.ViewProvider.
func (c *carrier) ErrorView() apis.ErrorView {
	v := apis.ErrorView{
		Message:    c.Message(),
		StatusCode: c.status,
		Kind:       string(c.kind),
	}
	if len(c.details) > 0 {
		v.Details = maps.Clone(c.details)
	}
	if c.request != nil {
		v.Request = &apis.RequestView{
			RequestID: c.request.RequestID(),
			TraceID:   c.request.TraceID(),
		}
	}
	return v
}
