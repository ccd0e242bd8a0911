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

// Package requests holds the basic error type shared by services built on
// the request/response envelopes of this module.
//
// Two variants exist, with an identical data contract (message, cause,
// originating request, status code, kind, details):
//
//   - *Error is recoverable: return it, inspect it, translate it.
//   - *RuntimeError is unchecked: Throw it and let a transport middleware
//     (httpx, ginx, fiberx, grpcx) recover and render it.
//
// Both implement apis.StatusCarrier, which is all the response-status
// adapters need to copy the status onto the outgoing response.
//
// Envelopes live in the request and response subpackages; the credential
// carrier in credential; pagination payloads in pageable.
package requests
