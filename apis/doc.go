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

// Package apis defines the Go-level contracts shared by the envelope,
// error and transport packages of this module.
//
// The concrete types live elsewhere (request.Request, response.Response,
// requests.Error, credential.Credential). Transport adapters (httpx, ginx,
// fiberx, grpcx) and business code that only needs to inspect an envelope
// should depend on these interfaces and view types instead.
//
// This package must stay lightweight: interfaces, small view structs and
// nothing that pulls in a web framework.
package apis
