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

package adapter

import (
	"errors"
	"net/http"
	"reflect"

	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/kind"
)

// StatusOf reports the status a response body wants applied to the
// transport. ok is true only when body implements apis.StatusCarrier and
// reports a positive status.
//
// It never panics: a nil body, a typed nil pointer or a carrier that panics
// are all reported as "no status".
func StatusOf(body any) (code int, ok bool) {
	if body == nil {
		return 0, false
	}
	sc, isCarrier := body.(apis.StatusCarrier)
	if !isCarrier {
		return 0, false
	}
	if rv := reflect.ValueOf(body); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return 0, false
	}
	defer func() {
		if recover() != nil {
			code, ok = 0, false
		}
	}()
	code, ok = sc.TransportStatus()
	if code <= 0 {
		return 0, false
	}
	return code, ok
}

// StatusOfError walks err's chain for a status carrier.
func StatusOfError(err error) (int, bool) {
	var sc apis.StatusCarrier
	if !errors.As(err, &sc) {
		return 0, false
	}
	return StatusOf(sc)
}

// ErrorStatus returns the HTTP status to render err with. ok is false when
// the transport status must be left as it is, which is the case for a basic
// error whose status is unset. Errors carrying no status at all, and every
// error while the adapter is disabled, get 500. A non-nil m rewrites the
// carried status.
func ErrorStatus(m apis.Mapper, enabled bool, err error) (code int, ok bool) {
	if !enabled {
		return http.StatusInternalServerError, true
	}
	var sc apis.StatusCarrier
	if !errors.As(err, &sc) {
		return http.StatusInternalServerError, true
	}
	code, ok = StatusOf(sc)
	if !ok {
		return 0, false
	}
	if m != nil {
		return m.HTTPStatus(code, KindOf(err)), true
	}
	return code, true
}

// KindOf returns the kind of the first kinded error in err's chain.
func KindOf(err error) kind.Kind {
	var ke apis.KindedError
	if errors.As(err, &ke) {
		return ke.ErrorKind()
	}
	return kind.Empty
}

// Resolve projects err onto both transports through m.
func Resolve(m apis.Mapper, err error) apis.Status {
	code, _ := StatusOfError(err)
	return m.Status(code, KindOf(err))
}

// ToView converts err into a public ErrorView.
//
// Basic errors render their own view. Any other error becomes a generic
// 500 view carrying err's text. No redaction or filtering happens here.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}
	code, ok := StatusOfError(err)
	if !ok {
		code = http.StatusInternalServerError
	}
	return apis.ErrorView{
		Message:    err.Error(),
		StatusCode: code,
		Kind:       string(KindOf(err)),
	}
}

// ToDescriptor flattens err together with its resolved transport statuses
// for structured logging.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Kind:       string(KindOf(err)),
		Message:    err.Error(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	var be apis.BasicError
	if errors.As(err, &be) {
		d.Message = be.Message()
	}
	var rb apis.RequestBoundError
	if errors.As(err, &rb) {
		if req := rb.Request(); req != nil {
			d.RequestID = req.RequestID()
			d.TraceID = req.TraceID()
		}
	}
	return d
}
