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

// Package ginx is the gin response status adapter.
//
//	r := gin.New()
//	r.Use(ginx.StatusAdvice(config.MustLoad()))
//	r.POST("/orders", func(c *gin.Context) {
//	    res := response.New(order)
//	    res.SetStatusCode(http.StatusCreated)
//	    ginx.Respond(c, res)
//	})
package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"nishisan.dev/requests"
	"nishisan.dev/requests/adapter"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/config"
)

const settingsKey = "nishisan.dev/requests/ginx"

type settings struct {
	enabled bool
	mapper  apis.Mapper
	logger  *zerolog.Logger
}

// Option configures StatusAdvice.
type Option func(*settings)

// WithMapper rewrites error statuses through m.
func WithMapper(m apis.Mapper) Option {
	return func(s *settings) { s.mapper = m }
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// StatusAdvice installs the adapter on a gin engine or group.
//
// After the handler chain ran, the last basic error pushed with c.Error is
// rendered as an apis.ErrorView, unless something was already written. A
// *requests.RuntimeError thrown anywhere in the chain is recovered and
// rendered the same way. Other panics propagate to gin's own recovery.
func StatusAdvice(cfg config.Config, opts ...Option) gin.HandlerFunc {
	s := &settings{enabled: cfg.Enabled, logger: &log.Logger}
	for _, opt := range opts {
		opt(s)
	}
	return func(c *gin.Context) {
		c.Set(settingsKey, s)
		defer requests.Recover(func(rt *requests.RuntimeError) {
			s.renderError(c, rt)
			c.Abort()
		})

		c.Next()

		if last := c.Errors.Last(); last != nil && !c.Writer.Written() {
			s.renderError(c, last.Err)
		}
	}
}

// Respond writes body as JSON. A positive status carried by body is used
// when the adapter is enabled; otherwise the status already on c (200 by
// default) is kept. An error body is rendered as an error view.
func Respond(c *gin.Context, body any) {
	s := settingsOf(c)
	if err, ok := body.(error); ok {
		s.renderError(c, err)
		return
	}
	code := c.Writer.Status()
	if s.enabled {
		if st, ok := adapter.StatusOf(body); ok {
			code = st
		}
	}
	if c.Writer.Written() {
		s.logger.Debug().Int("status", code).Msg("status not applied: response already committed")
	}
	c.JSON(code, body)
}

func settingsOf(c *gin.Context) *settings {
	if v, ok := c.Get(settingsKey); ok {
		if s, ok := v.(*settings); ok {
			return s
		}
	}
	return &settings{enabled: config.DefaultEnabled, logger: &log.Logger}
}

func (s *settings) renderError(c *gin.Context, err error) {
	code, ok := adapter.ErrorStatus(s.mapper, s.enabled, err)
	if !ok {
		code = c.Writer.Status()
	} else if code >= http.StatusInternalServerError {
		s.logger.Error().Int("status", code).Str("path", c.FullPath()).Err(err).Msg("request failed")
	}
	if c.Writer.Written() {
		s.logger.Debug().Int("status", code).Msg("status not applied: response already committed")
		return
	}
	c.JSON(code, adapter.ToView(err))
}
