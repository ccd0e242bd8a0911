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

import "nishisan.dev/requests/kind"

// KindedError is an error that carries a variant tag.
//
// Transports use the kind to pick finer-grained rules than the numeric
// status alone allows (see mapper).
type KindedError interface {
	error

	// ErrorKind returns the variant tag. May be kind.Empty.
	ErrorKind() kind.Kind
}

// DetailedError exposes the free-form diagnostic context of an error.
//
// Implementations return their live map; callers that need to keep it
// beyond the current call should copy it.
type DetailedError interface {
	error

	// Details returns the details mapping. Never nil.
	Details() map[string]any
}

// RequestBoundError is an error that remembers the request it failed on.
type RequestBoundError interface {
	error

	// Request returns the originating request, or nil.
	Request() Envelope
}

// BasicError is the full contract shared by both basic error variants.
type BasicError interface {
	StatusCarrier
	KindedError
	DetailedError
	RequestBoundError

	// StatusCode returns the raw status (500 unless changed).
	StatusCode() int

	// Message returns the human-readable message without the cause.
	Message() string
}
