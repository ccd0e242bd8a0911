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

// ErrorDescriptor is a flat, log-friendly projection of a basic error
// together with the statuses it resolved to on each transport.
//
// It is what adapters write into structured logs; unlike ErrorView it does
// not carry the details mapping, which the logger emits separately.
type ErrorDescriptor struct {
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	GRPCCode   int    `json:"grpc_code,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	TraceID    string `json:"trace_id,omitempty"`
}
