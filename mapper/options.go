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

package mapper

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the gRPC code used for an HTTP status
// when no override or kind rule applies.
func WithGRPCDefault(status int, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[status] = int(grpc) }
}

// WithHTTPOverride rewrites an HTTP status before it reaches the transport,
// e.g. 499 -> 408 for proxies that do not know 499.
func WithHTTPOverride(status, http int) Option {
	return func(b *builder) { b.httpOverride[status] = http }
}

// WithGRPCOverride forces the gRPC code for an HTTP status. Overrides win
// over kind rules and defaults.
func WithGRPCOverride(status int, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[status] = int(grpc) }
}

// WithHTTPPrefix adds a longest-prefix-match rule on the error kind. It only
// applies when the carrier has no status of its own. Use "*" to match a
// single segment.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a longest-prefix-match rule on the error kind. A
// matching rule wins over the per-status default.
func WithGRPCPrefix(prefix string, grpc codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, int(grpc)}) }
}

// WithFallback replaces the statuses used when nothing else matched
// (500 and codes.Internal by default).
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
