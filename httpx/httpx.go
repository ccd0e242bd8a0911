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

package httpx

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"nishisan.dev/requests"
	"nishisan.dev/requests/adapter"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/config"
)

// Committer is implemented by response writers that know whether the status
// line was already sent. Track returns one; gin's ResponseWriter is one too.
type Committer interface {
	Written() bool
}

// Writer turns response DTOs and basic errors into net/http responses.
//
// When Enabled, a positive status carried by the body (a response envelope
// or a basic error) is applied to the transport once, before the body is
// serialized. Otherwise the status is left alone (200 for bodies, 500 for
// errors).
type Writer struct {
	Enabled bool

	// Mapper, when set, rewrites error statuses (overrides, kind rules).
	Mapper apis.Mapper

	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// New returns a Writer configured from cfg.
func New(cfg config.Config) Writer {
	return Writer{Enabled: cfg.Enabled}
}

func (w Writer) logger() *zerolog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return &log.Logger
}

// ApplyStatus copies the status carried by body onto rw. It reports whether
// a status was written. It never fails: when rw was already committed the
// status is dropped and a debug event is logged.
func (w Writer) ApplyStatus(rw http.ResponseWriter, body any) bool {
	if !w.Enabled {
		return false
	}
	code, ok := adapter.StatusOf(body)
	if !ok {
		return false
	}
	if c, isCommitter := rw.(Committer); isCommitter && c.Written() {
		w.logger().Debug().Int("status", code).Msg("status not applied: response already committed")
		return false
	}
	rw.WriteHeader(code)
	return true
}

// Write serializes body as JSON after applying its status. An error body is
// delegated to WriteError.
func (w Writer) Write(rw http.ResponseWriter, body any) error {
	if err, ok := body.(error); ok {
		return w.WriteError(rw, err)
	}
	rw.Header().Set("Content-Type", "application/json")
	w.ApplyStatus(rw, body)
	return json.NewEncoder(rw).Encode(body)
}

// WriteError renders err as an apis.ErrorView. Its status comes from the
// error (through Mapper when set) when the writer is enabled, and is 500
// otherwise. A basic error with an unset status leaves the status of rw
// alone. Server-side failures are logged at error level.
func (w Writer) WriteError(rw http.ResponseWriter, err error) error {
	if err == nil {
		return nil
	}
	code, ok := adapter.ErrorStatus(w.Mapper, w.Enabled, err)
	view := adapter.ToView(err)

	if ok && code >= http.StatusInternalServerError {
		ev := w.logger().Error().Int("status", code)
		var be apis.BasicError
		if errors.As(err, &be) {
			if lm, ok := be.(zerolog.LogObjectMarshaler); ok {
				ev = ev.Object("error", lm)
			}
		} else {
			ev = ev.Err(err)
		}
		ev.Msg("request failed")
	}

	rw.Header().Set("Content-Type", "application/json")
	switch c, isCommitter := rw.(Committer); {
	case !ok:
	case isCommitter && c.Written():
		w.logger().Debug().Int("status", code).Msg("status not applied: response already committed")
	default:
		rw.WriteHeader(code)
	}
	return json.NewEncoder(rw).Encode(view)
}

// HandlerFunc produces a response body or an error for r.
type HandlerFunc func(r *http.Request) (any, error)

// Handler adapts fn to http.Handler. A *requests.RuntimeError thrown by fn
// is recovered and rendered like a returned error; other panics propagate.
func (w Writer) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		tw := Track(rw)
		defer requests.Recover(func(rt *requests.RuntimeError) {
			_ = w.WriteError(tw, rt)
		})

		body, err := fn(r)
		if err != nil {
			_ = w.WriteError(tw, err)
			return
		}
		if err := w.Write(tw, body); err != nil {
			w.logger().Debug().Err(err).Msg("response body not written")
		}
	})
}
