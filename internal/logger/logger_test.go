// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "meal-planner-server")

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "meal-planner-server", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_WritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_KeepsParentUntouched(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()
	require.NotSame(t, parent, child)

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])

	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("req")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty keeps current", level: "", want: zerolog.WarnLevel},
		{name: "unknown", level: "loud", want: zerolog.WarnLevel, wantErr: true},
		{name: "info", level: "info", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
