// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSignKey  string   `json:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer"`
		SessionDuration Duration `json:"session_duration"`
		LogLevel        string   `json:"log_level"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		Files struct {
			ImagesDir string `json:"images_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		SecureCookies  bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSignKey:  jsonCfg.App.SessionSignKey,
			SessionIssuer:   jsonCfg.App.SessionIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			LogLevel:        jsonCfg.App.LogLevel,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			Files: Files{
				ImagesDir: jsonCfg.Storage.Files.ImagesDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			SecureCookies:  jsonCfg.Server.SecureCookies,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
