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

// Package kind defines the optional variant tag carried by basic errors.
//
// A basic error is always a *requests.Error (or *requests.RuntimeError for
// the unchecked variant); what makes a "not found" different from a
// "validation failed" is its Kind, e.g.:
//
//   - "request.validation"
//   - "auth.token.expired"
//   - "storage.pg.unavailable"
//
// Kinds are hierarchical so that transports can attach rules to a whole
// subtree ("auth.*") instead of enumerating every leaf. The zero value is
// allowed and means the error is not further classified.
package kind
