// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredConfig carries the values validate insists on.
func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{SessionSignKey: "secret"},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost/db"},
			Redis: Redis{Address: "localhost:6379"},
		},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.Nil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{DefaultAllowedOrigin}, cfg.Server.AllowedOrigins)
	assert.Equal(t, DefaultImagesDir, cfg.Storage.Files.ImagesDir)
}

func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{App: App{Version: "1.0.0", SessionIssuer: "env"}},
		&StructuredConfig{App: App{SessionIssuer: "flags"}, Server: Server{AllowedOrigins: []string{"http://x.test"}}},
	)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flags", cfg.App.SessionIssuer)
	assert.Equal(t, []string{"http://x.test"}, cfg.Server.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no redis", mutate: func(cfg *StructuredConfig) { cfg.Storage.Redis.Address = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad level", mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative session", mutate: func(cfg *StructuredConfig) { cfg.App.SessionDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "no timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, requiredConfig())
			b.withDefaults()

			merged, err := b.build()
			require.NoError(t, err)

			tt.mutate(merged)
			err = merged.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":        "env-version",
		"APP_SESSION_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.SessionIssuer)
	assert.NoError(t, b.err)
}

func TestWithFlags_RecordsParseError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nonsense"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.SessionIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.SessionIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
