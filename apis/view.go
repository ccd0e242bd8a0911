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

// ErrorView is the serializable shape of a basic error handed to the host
// encoder (JSON body, gin/fiber render, gRPC struct detail).
//
// It intentionally mirrors what services historically exposed: message,
// status, a variant name, the details mapping and the originating request.
// No redaction happens here; whatever the error holds is exposed.
type ErrorView struct {
	// Message is the human-readable message.
	Message string `json:"msg"`

	// StatusCode is the numeric status carried by the error.
	StatusCode int `json:"statusCode"`

	// Kind is the variant tag, e.g. "request.validation". Empty for a plain
	// basic error.
	Kind string `json:"kind,omitempty"`

	// Details is the free-form diagnostic mapping.
	Details map[string]any `json:"details,omitempty"`

	// Request identifies the originating request, when one was attached.
	Request *RequestView `json:"request,omitempty"`
}

// RequestView is the part of a request envelope worth echoing in an error
// body. Headers and credentials are deliberately left out.
type RequestView struct {
	RequestID string `json:"requestId,omitempty"`
	TraceID   string `json:"traceId,omitempty"`
}

// ViewProvider is implemented by errors that can produce their own
// transport-friendly snapshot.
type ViewProvider interface {
	error

	// ErrorView returns a snapshot safe to marshal.
	ErrorView() ErrorView
}
