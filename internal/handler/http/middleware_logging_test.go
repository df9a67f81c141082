// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:         "GET 200",
			method:       http.MethodGet,
			path:         "/api/ping",
			status:       http.StatusOK,
			body:         "OK",
			wantContains: []string{`"method":"GET"`, `"uri":"/api/ping"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:         "POST 404",
			method:       http.MethodPost,
			path:         "/api/lists/remove/9",
			status:       http.StatusNotFound,
			wantContains: []string{`"method":"POST"`, `"status":404`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithTraceID_ChildLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-abc"`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 3, rw.size)
	assert.Equal(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = rw.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, rw.status)
}
