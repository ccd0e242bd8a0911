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
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// captureStack records the stack of whoever called the public constructor.
// Frames dropped: captureStack, newCarrier, the constructor itself.
func captureStack() pkgerrors.StackTrace {
	const skip = 3
	st := pkgerrors.New("").(stackTracer).StackTrace()
	if len(st) <= skip {
		return nil
	}
	return st[skip:]
}

// StackTrace returns the frames captured when the error was built.
func (c *carrier) StackTrace() pkgerrors.StackTrace { return c.stack }

// PrintStackTrace writes every detail as "<key>: -> <value>" (keys sorted),
// then the error text, the construction stack and the cause chain.
// A nil writer means os.Stderr.
func (c *carrier) PrintStackTrace(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	c.writeDetails(w)
	_, _ = io.WriteString(w, c.text())
	_, _ = fmt.Fprintf(w, "%+v\n", c.stack)
	if c.cause != nil {
		_, _ = fmt.Fprintf(w, "Caused by: %+v\n", c.cause)
	}
}

func (c *carrier) writeDetails(w io.Writer) {
	keys := make([]string, 0, len(c.details))
	for k := range c.details {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s: -> %v\n", k, c.details[k])
	}
}

// Format implements fmt.Formatter.
//
//	%s, %v  the error text
//	%q      the error text, quoted
//	%+v     the PrintStackTrace output
func (c *carrier) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			c.PrintStackTrace(s)
			return
		}
		_, _ = io.WriteString(s, c.text())
	case 's':
		_, _ = io.WriteString(s, c.text())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.text())
	}
}

// MarshalJSON renders the apis.ErrorView of the error.
func (c *carrier) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ErrorView())
}

// MarshalZerologObject lets the error be logged with its context:
//
//	log.Error().Object("error", err).Msg("request failed")
func (c *carrier) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("message", c.Message()).Int("status", c.status)
	if c.kind != "" {
		ev.Str("kind", string(c.kind))
	}
	if c.request != nil {
		ev.Str("request_id", c.request.RequestID())
	}
	if len(c.details) > 0 {
		ev.Dict("details", zerolog.Dict().Fields(c.details))
	}
	if c.cause != nil {
		ev.AnErr("cause", c.cause)
	}
}

var _ zerolog.LogObjectMarshaler = (*carrier)(nil)
