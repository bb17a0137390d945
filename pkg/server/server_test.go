// Copyright 2026 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Author Ewout Prangsma
//

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binkynet/Heartbeat/pkg/heartbeat"
	"github.com/binkynet/Heartbeat/pkg/model"
)

type staticStatus heartbeat.Status

func (s staticStatus) Status() heartbeat.Status {
	return heartbeat.Status(s)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.newRouter().ServeHTTP(rec, req)
	return rec
}

func TestHealthRunning(t *testing.T) {
	s, err := New(Config{HTTPPort: 7130}, zerolog.Nop(), staticStatus{
		Pin:       18,
		Level:     model.Low,
		Ticks:     7,
		Running:   true,
		StartedAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	rec := get(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(18), body["pin"])
	assert.Equal(t, "low", body["level"])
	assert.Equal(t, float64(7), body["ticks"])
	assert.Equal(t, true, body["running"])
	assert.NotEmpty(t, body["uptime"])
}

func TestHealthStopped(t *testing.T) {
	s, err := New(Config{HTTPPort: 7130}, zerolog.Nop(), staticStatus{Pin: 18})
	require.NoError(t, err)

	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "uptime")
}

func TestMetricsEndpoint(t *testing.T) {
	s, err := New(Config{HTTPPort: 7130}, zerolog.Nop(), staticStatus{})
	require.NoError(t, err)

	rec := get(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewInvalidPort(t *testing.T) {
	_, err := New(Config{}, zerolog.Nop(), staticStatus{})
	assert.Error(t, err)
}
