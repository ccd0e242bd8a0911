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

// Credential is the non-generic view of an authenticated principal
// reference. credential.Credential[T] implements it for every T, which lets
// a request hold a credential without knowing its user-data type.
type Credential interface {
	// UserID returns the opaque user identifier. May be empty.
	UserID() string

	// SetUserID replaces the user identifier.
	SetUserID(id string)
}

// Envelope is the payload-independent part of a request envelope.
//
// Errors keep a reference to the request they originated from through this
// interface, so the error type does not need a type parameter.
type Envelope interface {
	// RequestID returns the caller-assigned request identifier. It may be
	// empty until the caller assigns one.
	RequestID() string

	// TraceID returns the distributed trace identifier, if any.
	TraceID() string

	// Header returns the value stored under name and whether it was present.
	// Absence is reported through ok=false, never through an error.
	Header(name string) (value string, ok bool)

	// Headers returns a snapshot of all headers. Mutating the returned map
	// does not affect the envelope.
	Headers() map[string]string

	// Credential returns the attached credential or nil.
	Credential() Credential
}

// Page is the paged-result collaborator: anything that knows its page size
// and how many pages exist in total. Response envelopes read only these two
// accessors.
type Page interface {
	PageSize() int
	TotalPages() int
}
