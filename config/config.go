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

// Package config loads the switches of the response status adapters.
//
// The only key today is nishi.requests.common.enabled. It can come from a
// config file (any format viper reads) or from the environment as
// NISHI_REQUESTS_COMMON_ENABLED, and defaults to true.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnabledKey turns the response status adapters on or off.
const EnabledKey = "nishi.requests.common.enabled"

// DefaultEnabled is used when EnabledKey is not set anywhere.
const DefaultEnabled = true

// Config holds the adapter switches.
type Config struct {
	// Enabled makes adapters copy the DTO status onto the transport
	// response. When false they leave the host's status untouched.
	Enabled bool
}

// Default returns the configuration used when nothing is loaded.
func Default() Config {
	return Config{Enabled: DefaultEnabled}
}

type options struct {
	v    *viper.Viper
	file string
}

// Option configures Load.
type Option func(*options)

// WithFile reads path before looking at the environment. A missing file is
// an error.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithViper reads from a viper instance owned by the host, so the flag can
// live in the host's own configuration. Defaults and environment binding
// are still applied to v.
func WithViper(v *viper.Viper) Option {
	return func(o *options) { o.v = v }
}

// Load resolves the configuration from, in increasing precedence: the
// default, the config file, the environment.
func Load(opts ...Option) (Config, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	v := o.v
	if v == nil {
		v = viper.New()
	}

	v.SetDefault(EnabledKey, DefaultEnabled)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv(EnabledKey); err != nil {
		return Config{}, fmt.Errorf("config: bind env: %w", err)
	}

	if o.file != "" {
		v.SetConfigFile(o.file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", o.file, err)
		}
	}

	enabled, err := cast.ToBoolE(v.Get(EnabledKey))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", EnabledKey, err)
	}
	cfg := Config{Enabled: enabled}
	log.Debug().Bool("enabled", cfg.Enabled).Str("key", EnabledKey).Msg("requests adapters configured")
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(opts ...Option) Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}
