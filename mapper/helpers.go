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

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"nishisan.dev/requests/kind"
	"nishisan.dev/requests/mapper/internal/segmenttrie"
)

// freeze copies src so later changes to the builder cannot leak into the
// mapper. Empty maps become nil.
func freeze[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeCodes is freeze for builder maps holding gRPC codes as int.
func freezeCodes(src map[int]int) map[int]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[int]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// compile builds a trie from rules, converting values with conv.
// It returns nil when there are no rules.
func compile[T any](transport string, rules []prefixRule, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s kind prefix %q: %w", transport, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", transport, p, err)
		}
	}
	return t, nil
}

// normalizePrefix canonicalizes a kind prefix the way kind.Parse does,
// additionally allowing "*" segments.
func normalizePrefix(raw string) (string, error) {
	p := kind.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	if len(p) > kind.MaxLength {
		return "", kind.ErrKindInvalidLength
	}
	if n := strings.Count(p, ".") + 1; n > 4 {
		return "", fmt.Errorf("too many segments (%d)", n)
	}
	return p, nil
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
