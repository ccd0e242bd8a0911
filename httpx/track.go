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

package httpx

import "net/http"

// TrackingWriter records whether the status line was sent.
type TrackingWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

var _ Committer = (*TrackingWriter)(nil)

// Track wraps rw. Wrapping a TrackingWriter returns it unchanged.
func Track(rw http.ResponseWriter) *TrackingWriter {
	if tw, ok := rw.(*TrackingWriter); ok {
		return tw
	}
	return &TrackingWriter{ResponseWriter: rw}
}

// WriteHeader records code and forwards it the first time only.
func (t *TrackingWriter) WriteHeader(code int) {
	if t.written {
		return
	}
	t.status = code
	t.written = true
	t.ResponseWriter.WriteHeader(code)
}

// Write commits an implicit 200 when no status was set.
func (t *TrackingWriter) Write(b []byte) (int, error) {
	if !t.written {
		t.WriteHeader(http.StatusOK)
	}
	return t.ResponseWriter.Write(b)
}

// Written implements Committer.
func (t *TrackingWriter) Written() bool { return t.written }

// Status returns the committed status, 0 before commit.
func (t *TrackingWriter) Status() int { return t.status }

// Unwrap lets http.ResponseController reach the underlying writer.
func (t *TrackingWriter) Unwrap() http.ResponseWriter { return t.ResponseWriter }
