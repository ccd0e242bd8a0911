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

// Package credential holds the user-credential carrier attached to request
// envelopes.
package credential

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"nishisan.dev/requests/apis"
)

// ErrNoSubject is returned by FromClaims when the claims carry no subject.
var ErrNoSubject = errors.New("credential: claims have no subject")

// Credential is an authenticated principal reference: an opaque user id
// plus caller-defined user data. It performs no validation.
type Credential[T any] struct {
	userID   string
	userData T
}

// Generic is the credential used when the user data has no static type.
type Generic = Credential[any]

var _ apis.Credential = (*Credential[any])(nil)

// New returns a credential for userID with zero user data.
func New[T any](userID string) *Credential[T] {
	return &Credential[T]{userID: userID}
}

// NewGeneric returns a Generic credential for userID.
func NewGeneric(userID string) *Generic {
	return New[any](userID)
}

// FromClaims builds a credential out of already-verified JWT claims. The
// subject becomes the user id and the claims themselves the user data.
// Token signature and expiry must have been checked by the caller.
func FromClaims(claims jwt.Claims) (*Credential[jwt.Claims], error) {
	if claims == nil {
		return nil, ErrNoSubject
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("credential: read subject: %w", err)
	}
	if sub == "" {
		return nil, ErrNoSubject
	}
	c := New[jwt.Claims](sub)
	c.SetUserData(claims)
	return c, nil
}

func (c *Credential[T]) UserID() string      { return c.userID }
func (c *Credential[T]) SetUserID(id string) { c.userID = id }
func (c *Credential[T]) UserData() T         { return c.userData }
func (c *Credential[T]) SetUserData(data T)  { c.userData = data }
