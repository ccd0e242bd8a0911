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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.True(t, Default().Enabled)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("NISHI_REQUESTS_COMMON_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("NISHI_REQUESTS_COMMON_ENABLED", "maybe")
	_, err := Load()
	require.Error(t, err)
	assert.Panics(t, func() { MustLoad() })
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nishi:\n  requests:\n    common:\n      enabled: false\n"), 0o600))

	cfg, err := Load(WithFile(path))
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)

	t.Setenv("NISHI_REQUESTS_COMMON_ENABLED", "true")
	cfg, err = Load(WithFile(path))
	require.NoError(t, err)
	assert.True(t, cfg.Enabled, "environment wins over the file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestLoad_HostViper(t *testing.T) {
	v := viper.New()
	v.Set(EnabledKey, false)
	cfg, err := Load(WithViper(v))
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}
