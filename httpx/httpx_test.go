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

package httpx_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nishisan.dev/requests"
	"nishisan.dev/requests/apis"
	"nishisan.dev/requests/config"
	"nishisan.dev/requests/httpx"
	"nishisan.dev/requests/mapper"
	"nishisan.dev/requests/response"
)

func created(payload any) *response.Response[any] {
	r := response.New(payload)
	r.SetStatusCode(http.StatusCreated)
	return r
}

func TestWrite_AppliesResponseStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := httpx.New(config.Default())

	require.NoError(t, w.Write(rec, created([]int{1, 2})))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.EqualValues(t, 2, doc["size"])
}

func TestWrite_NoStatusKeepsDefault(t *testing.T) {
	rec := httptest.NewRecorder()
	w := httpx.New(config.Default())
	require.NoError(t, w.Write(rec, response.New("x")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, w.Write(rec, map[string]int{"a": 1}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWrite_Disabled(t *testing.T) {
	rec := httptest.NewRecorder()
	w := httpx.New(config.Config{Enabled: false})
	require.NoError(t, w.Write(rec, created("x")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyStatus_ErrorWithoutStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := httpx.New(config.Default())
	e := requests.New("x")
	e.SetStatusCode(0)

	assert.False(t, w.ApplyStatus(rec, e))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWrite_ErrorWithoutStatusKeepsHostStatus(t *testing.T) {
	e := requests.New("x")
	e.SetStatusCode(0)

	rec := httptest.NewRecorder()
	w := httpx.New(config.Default())
	require.NoError(t, w.Write(rec, e))
	assert.Equal(t, http.StatusOK, rec.Code)

	var v apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "x", v.Message)

	m, err := mapper.New(mapper.WithHTTPOverride(499, http.StatusRequestTimeout))
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	w = httpx.Writer{Enabled: true, Mapper: m}
	require.NoError(t, w.WriteError(rec, e))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyStatus_AlreadyCommitted(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	w := httpx.Writer{Enabled: true, Logger: &logger}

	rec := httptest.NewRecorder()
	tw := httpx.Track(rec)
	tw.WriteHeader(http.StatusAccepted)

	assert.False(t, w.ApplyStatus(tw, created("x")))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, logs.String(), "already committed")
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	w := httpx.Writer{Enabled: true, Logger: &logger}

	err := requests.New("order not found", requests.WithStatus(404), requests.WithKind("order.not_found")).
		Detail("orderId", 7)
	require.NoError(t, w.WriteError(rec, err))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var v apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "order not found", v.Message)
	assert.Equal(t, 404, v.StatusCode)
	assert.Equal(t, "order.not_found", v.Kind)
	assert.EqualValues(t, 7, v.Details["orderId"])
	assert.Empty(t, logs.String(), "4xx are not logged")

	rec = httptest.NewRecorder()
	require.NoError(t, w.WriteError(rec, errors.New("disk full")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "disk full")
}

func TestWriteError_Mapper(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride(499, http.StatusRequestTimeout))
	require.NoError(t, err)
	w := httpx.Writer{Enabled: true, Mapper: m}

	rec := httptest.NewRecorder()
	require.NoError(t, w.WriteError(rec, requests.New("gone", requests.WithStatus(499))))
	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
}

func TestWriteError_Disabled(t *testing.T) {
	rec := httptest.NewRecorder()
	w := httpx.New(config.Config{Enabled: false})
	require.NoError(t, w.WriteError(rec, requests.New("x", requests.WithStatus(404))))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler(t *testing.T) {
	w := httpx.New(config.Default())
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)

	rec := httptest.NewRecorder()
	w.Handler(func(*http.Request) (any, error) { return created("ok"), nil }).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	w.Handler(func(*http.Request) (any, error) {
		return nil, requests.New("conflict", requests.WithStatus(http.StatusConflict))
	}).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	w.Handler(func(*http.Request) (any, error) {
		requests.Throw(requests.New("teapot", requests.WithStatus(http.StatusTeapot)))
		return nil, nil
	}).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Panics(t, func() {
		w.Handler(func(*http.Request) (any, error) { panic("foreign") }).
			ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestTrack(t *testing.T) {
	rec := httptest.NewRecorder()
	tw := httpx.Track(rec)
	assert.Same(t, tw, httpx.Track(tw))
	assert.False(t, tw.Written())

	_, err := tw.Write([]byte("x"))
	require.NoError(t, err)
	assert.True(t, tw.Written())
	assert.Equal(t, http.StatusOK, tw.Status())

	tw.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusOK, rec.Code)
}
