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

// Violation reports a single failed field check on a request payload.
//
// A validation error stores a []Violation under the "violations" details
// key, so clients can show every failing field at once.
type Violation struct {
	// Field is the logical path to the failing field, e.g. "size" or
	// "filter.direction".
	Field string `json:"field"`

	// Rule is the check that failed, e.g. "required", "gte", "oneof".
	Rule string `json:"rule"`

	// Param is the rule parameter when there is one ("0", "asc desc").
	Param string `json:"param,omitempty"`

	// Value is the rejected value rendered as text. May be empty.
	Value string `json:"value,omitempty"`
}
