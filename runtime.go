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
	"errors"
	"fmt"

	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
)

// RuntimeError is the unchecked variant of the basic error. It carries
// exactly the same data and prints the same way as Error, but is meant to
// travel by panic (see Throw) rather than through return values, for faults
// that should not be handled at every call site.
//
// Transport middlewares in this module recover a *RuntimeError and render
// it like any other basic error.
type RuntimeError struct {
	carrier
}

var (
	_ apis.BasicError   = (*RuntimeError)(nil)
	_ apis.ViewProvider = (*RuntimeError)(nil)
)

// NewRuntime returns an unchecked basic error.
func NewRuntime(msg string, opts ...Option) *RuntimeError {
	e := &RuntimeError{carrier: newCarrier(msg)}
	e.apply(opts)
	return e
}

// WrapRuntime returns an unchecked basic error wrapping cause.
func WrapRuntime(cause error, msg string, opts ...Option) *RuntimeError {
	e := &RuntimeError{carrier: newCarrier(msg)}
	e.cause = cause
	e.apply(opts)
	return e
}

// Error implements the error interface. Same format as Error.Error.
func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.text()
}

// Detail stores value under key and returns e itself.
func (e *RuntimeError) Detail(key string, value any) *RuntimeError {
	e.put(key, value)
	return e
}

// TransportStatus implements apis.StatusCarrier.
func (e *RuntimeError) TransportStatus() (int, bool) {
	if e == nil {
		return 0, false
	}
	return e.transportStatus()
}

// Checked returns the recoverable variant carrying the same data.
func (e *RuntimeError) Checked() *Error {
	return &Error{carrier: e.clone()}
}

// Throw panics with err as a *RuntimeError. A *Error is converted with
// Unchecked; any other error is wrapped with the default status. A nil err
// does nothing.
func Throw(err error) {
	if err == nil {
		return
	}
	panic(toRuntime(err))
}

// Must returns v, or throws err when it is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		Throw(err)
	}
	return v
}

// AsRuntime converts a value returned by recover() into a *RuntimeError.
// ok is false when r is nil or is not a basic error panic.
func AsRuntime(r any) (*RuntimeError, bool) {
	switch v := r.(type) {
	case *RuntimeError:
		return v, v != nil
	case error:
		var rt *RuntimeError
		if errors.As(v, &rt) {
			return rt, true
		}
	}
	return nil, false
}

// Recover is meant to be deferred directly:
//
//	defer requests.Recover(func(err *requests.RuntimeError) { ... })
//
// It hands a thrown *RuntimeError to fn and re-panics anything else.
func Recover(fn func(*RuntimeError)) {
	r := recover()
	if r == nil {
		return
	}
	rt, ok := AsRuntime(r)
	if !ok {
		panic(r)
	}
	fn(rt)
}

// FromPanic turns any recovered value into a *RuntimeError, wrapping
// foreign panics with kind.Runtime. It returns nil for a nil value.
func FromPanic(r any) *RuntimeError {
	if r == nil {
		return nil
	}
	if rt, ok := AsRuntime(r); ok {
		return rt
	}
	if err, ok := r.(error); ok {
		return WrapRuntime(err, "", WithKind(kind.Runtime))
	}
	return NewRuntime(fmt.Sprint(r), WithKind(kind.Runtime))
}

func toRuntime(err error) *RuntimeError {
	var rt *RuntimeError
	if errors.As(err, &rt) {
		return rt
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Unchecked()
	}
	return WrapRuntime(err, "")
}

// Is reports whether any basic error in err's chain carries a kind at or
// below k ("auth" matches "auth.token.expired").
func Is(err error, k kind.Kind) bool {
	for err != nil {
		if ke, ok := err.(apis.KindedError); ok && ke.ErrorKind() != kind.Empty && ke.ErrorKind().HasPrefix(k) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// StatusOf returns the status of the first basic error in err's chain.
func StatusOf(err error) (int, bool) {
	var sc apis.StatusCarrier
	if errors.As(err, &sc) {
		return sc.TransportStatus()
	}
	return 0, false
}
