// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func requireReason(t *testing.T, err error, reason string) {
	t.Helper()
	var vErr *validators.Error
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	require.Equal(t, reason, vErr.Reason)
}

func ptr[T any](v T) *T { return &v }
