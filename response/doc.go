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

// Package response provides the outbound envelope.
//
// Every response gets a random UUID at construction. When the payload is a
// collection its length becomes Size; when it is an apis.Page, Size and
// TotalPages come from the page. A positive status code set on the response
// is applied to the transport by the adapters in httpx, ginx, fiberx and
// grpcx.
package response
