// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// hostPort is a flag.Value accepting "host:port" or ":port". Hostnames,
// IPv4 and bracketed IPv6 hosts are allowed.
type hostPort string

func (a *hostPort) String() string {
	return string(*a)
}

func (a *hostPort) Set(s string) error {
	host, port, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port %q: must be between 1 and 65535", port)
	}
	if strings.ContainsAny(host, " /") {
		return errors.New("invalid host")
	}

	*a = hostPort(net.JoinHostPort(host, port))
	return nil
}

// originList is a comma-separated flag.Value; repeated flags append.
type originList []string

func (o *originList) String() string {
	return strings.Join(*o, ",")
}

func (o *originList) Set(s string) error {
	*o = append(*o, splitList(s)...)
	return nil
}

// ParseFlags parses args (without the program name).
//
//	-a                 listen address host:port
//	-d                 database DSN
//	-r                 redis address host:port
//	-i                 uploaded images directory
//	-c, -config        JSON config file
//	-session-sign-key  session token signing key
//	-session-issuer    session token issuer
//	-session-duration  session lifetime, e.g. "24h"
//	-log-level         zerolog level name
//	-request-timeout   per-request timeout, e.g. "30s"
//	-allowed-origins   comma-separated CORS origins
//	-secure-cookies    mark the session cookie Secure
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg          StructuredConfig
		listen       hostPort
		redisAddress hostPort
		origins      originList
	)

	fs := flag.NewFlagSet("meal-planner", flag.ContinueOnError)
	fs.Var(&listen, "a", "Listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.Var(&redisAddress, "r", "Redis address host:port")
	fs.StringVar(&cfg.Storage.Files.ImagesDir, "i", "", "Uploaded images directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.SessionSignKey, "session-sign-key", "", "Session signing key")
	fs.StringVar(&cfg.App.SessionIssuer, "session-issuer", "", "Session issuer")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&origins, "allowed-origins", "Comma-separated CORS origins")
	fs.BoolVar(&cfg.Server.SecureCookies, "secure-cookies", false, "Set Secure on session cookies")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = listen.String()
	cfg.Storage.Redis.Address = redisAddress.String()
	if len(origins) > 0 {
		cfg.Server.AllowedOrigins = origins
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var values []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
