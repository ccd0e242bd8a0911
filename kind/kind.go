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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated tag that tells concrete error variants
// apart.
//
// Kinds are dot-separated hierarchical identifiers with a small, fixed depth.
// The first segment usually names the area (request, auth, storage), the
// following ones narrow it down:
//
//   - "request.validation"
//   - "request.header.missing"
//   - "auth.token.expired"
//   - "storage.pg.unavailable"
//
// The zero value means "no kind attached": a plain basic error.
type Kind string

// MinLength and MaxLength bound the length of a non-empty kind.
const (
	MinLength = 3
	MaxLength = 128
)

// kindFmt accepts 1 to 4 segments, each [a-z][a-z0-9_]*.
// The empty string is handled separately and never reaches the regexp.
const kindFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var kindRe = regexp.MustCompile(kindFmt)

var (
	// ErrKindInvalidFormat is returned when a kind does not match kindFmt.
	ErrKindInvalidFormat = errors.New("requests: invalid kind format")
	// ErrKindInvalidLength is returned when a kind is too short or too long.
	ErrKindInvalidLength = errors.New("requests: invalid kind length")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind.
var Empty Kind = ""

// Well-known kinds raised by this module itself.
const (
	Validation Kind = "request.validation"
	Malformed  Kind = "request.malformed"
	Runtime    Kind = "runtime.panic"
)

// Normalize trims, lower-cases, turns "/" into "." and "-" into "_".
// It does not guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string parses to Empty.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is Parse that panics on error. Unlike Parse it rejects the
// empty string, which is always a programmer error at a declaration site.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if k == Empty {
		panic("requests: empty kind in MustParse")
	}
	return k
}

// Validate reports whether k is canonical. Empty is valid.
func Validate(k Kind) error {
	if k == Empty {
		return nil
	}
	return validate(string(k))
}

func (k Kind) String() string {
	return string(k)
}

// HasPrefix reports whether k equals prefix or lives below it on a segment
// boundary: "auth.token.expired" has prefix "auth.token" but not "auth.tok".
func (k Kind) HasPrefix(prefix Kind) bool {
	if prefix == Empty {
		return true
	}
	if !strings.HasPrefix(string(k), string(prefix)) {
		return false
	}
	rest := string(k)[len(prefix):]
	return rest == "" || rest[0] == '.'
}

// Segments splits k into its dot-separated parts. Empty yields nil.
func (k Kind) Segments() []string {
	if k == Empty {
		return nil
	}
	return strings.Split(string(k), ".")
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	if k == Empty {
		return []byte{}, nil
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrKindInvalidLength
	}
	if !kindRe.MatchString(s) {
		return ErrKindInvalidFormat
	}
	return nil
}
