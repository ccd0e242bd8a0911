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

package requests

import (
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
)

// Option configures a basic error (either variant) at construction.
type Option func(*carrier)

// WithStatus sets the status code.
func WithStatus(code int) Option {
	return func(c *carrier) { c.status = code }
}

// WithKind sets the variant tag. Invalid kinds are normalized first and
// dropped if they still do not validate.
func WithKind(k kind.Kind) Option {
	return func(c *carrier) {
		parsed, err := kind.Parse(string(k))
		if err != nil {
			return
		}
		c.kind = parsed
	}
}

// WithRequest attaches the originating request.
func WithRequest(req apis.Envelope) Option {
	return func(c *carrier) { c.request = req }
}

// WithCause attaches the underlying cause. A nil err is ignored.
func WithCause(err error) Option {
	return func(c *carrier) {
		if err != nil {
			c.cause = err
		}
	}
}

// WithDetail adds one key/value to the details.
func WithDetail(key string, value any) Option {
	return func(c *carrier) { c.put(key, value) }
}

// WithDetails merges kv into the details; kv wins on conflicts.
func WithDetails(kv map[string]any) Option {
	return func(c *carrier) {
		for k, v := range kv {
			c.put(k, v)
		}
	}
}
