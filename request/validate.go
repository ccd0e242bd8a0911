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

package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"nishisan.dev/requests"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
)

// ViolationsKey is the details key holding the []apis.Violation of a
// validation error.
const ViolationsKey = "violations"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name, which is what clients sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validator returns the shared validator so hosts can register custom
// rules before serving traffic.
func Validator() *validator.Validate {
	return validate
}

// Validate checks the payload of r against its "validate" struct tags.
//
// Payloads that are not structs (or pointers to structs) are accepted as
// they are. On failure the returned *requests.Error has status 400, kind
// request.validation, r attached as origin and the failing fields under
// ViolationsKey.
func Validate[T any](ctx context.Context, r *Request[T]) error {
	if r == nil || !isStruct(r.payload) {
		return nil
	}
	err := validate.StructCtx(ctx, r.payload)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return requests.Wrap(err, "request validation could not run",
			requests.WithKind(kind.Validation),
			requests.WithRequest(r),
		)
	}
	violations := lo.Map(ve, func(fe validator.FieldError, _ int) apis.Violation {
		return apis.Violation{
			Field: fieldPath(fe),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: cast.ToString(fe.Value()),
		}
	})
	fields := lo.Uniq(lo.Map(violations, func(v apis.Violation, _ int) string { return v.Field }))

	return requests.New(fmt.Sprintf("invalid request: %s", strings.Join(fields, ", ")),
		requests.WithStatus(http.StatusBadRequest),
		requests.WithKind(kind.Validation),
		requests.WithRequest(r),
	).Detail(ViolationsKey, violations)
}

// fieldPath drops the root struct name from the namespace:
// "Pageable.size" becomes "size".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func isStruct(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}
