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

package fiberx

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"nishisan.dev/requests"
	"nishisan.dev/requests/adapter"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/config"
)

const settingsKey = "nishisan.dev/requests/fiberx"

type settings struct {
	enabled bool
	mapper  apis.Mapper
	logger  *zerolog.Logger
}

// Option configures the fiber adapter.
type Option func(*settings)

// WithMapper rewrites error statuses through m.
func WithMapper(m apis.Mapper) Option {
	return func(s *settings) { s.mapper = m }
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func newSettings(cfg config.Config, opts []Option) *settings {
	s := &settings{enabled: cfg.Enabled, logger: &log.Logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppConfig returns a fiber.Config wired with ErrorHandler and the go-json
// codec. Hosts may adjust the other fields before calling fiber.New.
func AppConfig(cfg config.Config, opts ...Option) fiber.Config {
	return fiber.Config{
		ErrorHandler: ErrorHandler(cfg, opts...),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	}
}

// StatusAdvice installs the adapter on an app or group.
//
// Basic errors returned by the chain are rendered as apis.ErrorView; other
// errors are handed on to the app's ErrorHandler. A thrown
// *requests.RuntimeError is recovered and rendered; other panics propagate.
//
// fasthttp buffers the whole response until the handler returns, so the
// status can always still be replaced here.
func StatusAdvice(cfg config.Config, opts ...Option) fiber.Handler {
	s := newSettings(cfg, opts)
	return func(c *fiber.Ctx) (err error) {
		c.Locals(settingsKey, s)
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			rt, ok := requests.AsRuntime(r)
			if !ok {
				panic(r)
			}
			err = s.renderError(c, rt)
		}()

		err = c.Next()
		var be apis.BasicError
		if err != nil && errors.As(err, &be) {
			return s.renderError(c, err)
		}
		return err
	}
}

// ErrorHandler renders any error reaching fiber: basic errors with their
// own status, *fiber.Error with its code, anything else as 500.
func ErrorHandler(cfg config.Config, opts ...Option) fiber.ErrorHandler {
	s := newSettings(cfg, opts)
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		var be apis.BasicError
		if errors.As(err, &fe) && !errors.As(err, &be) {
			return c.Status(fe.Code).JSON(apis.ErrorView{Message: fe.Message, StatusCode: fe.Code})
		}
		return s.renderError(c, err)
	}
}

// Respond writes body as JSON. A positive status carried by body is used
// when the adapter is enabled; otherwise the status already on c (200 by
// default) is kept. An error body is rendered as an error view.
func Respond(c *fiber.Ctx, body any) error {
	s := settingsOf(c)
	if err, ok := body.(error); ok {
		return s.renderError(c, err)
	}
	if s.enabled {
		if code, ok := adapter.StatusOf(body); ok {
			c.Status(code)
		}
	}
	return c.JSON(body)
}

func settingsOf(c *fiber.Ctx) *settings {
	if s, ok := c.Locals(settingsKey).(*settings); ok {
		return s
	}
	return newSettings(config.Default(), nil)
}

func (s *settings) renderError(c *fiber.Ctx, err error) error {
	code, ok := adapter.ErrorStatus(s.mapper, s.enabled, err)
	if ok {
		if code >= http.StatusInternalServerError {
			s.logger.Error().Int("status", code).Str("path", c.Path()).Err(err).Msg("request failed")
		}
		c.Status(code)
	}
	return c.JSON(adapter.ToView(err))
}
