// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("")

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded resty client")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("")
	b := NewHTTPClient("")

	if a.Client == b.Client {
		t.Fatal("expected independent resty clients")
	}
}

func TestNewHTTPClient_BaseURLAndCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/set":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		case "/check":
			c, err := r.Cookie("session")
			if err != nil || c.Value != "abc" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if r.Header.Get("Accept") != "application/json" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	resp, err := client.R().Get("/set")
	if err != nil || resp.StatusCode() != http.StatusOK {
		t.Fatalf("set cookie request failed: %v", err)
	}

	resp, err = client.R().Get("/check")
	if err != nil {
		t.Fatalf("check request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected cookie to be replayed, got status %d", resp.StatusCode())
	}
}

func TestHTTPClient_Ping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "pong", status: http.StatusOK, body: `{"success":true,"message":"pong"}`},
		{name: "wrong message", status: http.StatusOK, body: `{"success":true,"message":"hi"}`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"success":false}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/ping" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewHTTPClient(srv.URL).Ping(context.Background())

			if tt.wantErr {
				if !errors.Is(err, ErrUnhealthy) {
					t.Fatalf("expected ErrUnhealthy, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected healthy server, got %v", err)
			}
		})
	}
}

func TestHTTPClient_PingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if err := NewHTTPClient(url).Ping(context.Background()); !errors.Is(err, ErrUnhealthy) {
		t.Fatalf("expected ErrUnhealthy, got %v", err)
	}
}
