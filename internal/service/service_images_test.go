// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/mock"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImageService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock.NewMockImageStorage(ctrl)
	svc := NewImageService(images, fixedIDs("0190-abc"), logger.Nop())

	images.EXPECT().SaveImage(gomock.Any(), "0190-abc.png", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r io.Reader) error {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))
			return nil
		},
	)

	url, err := svc.UploadImage(context.Background(), "Cake.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploaded_images/0190-abc.png", url)
}

func TestImageService_UploadImage_Rejected(t *testing.T) {
	svc := NewImageService(mock.NewMockImageStorage(gomock.NewController(t)), fixedIDs("x"), logger.Nop())

	_, err := svc.UploadImage(context.Background(), "notes.txt", strings.NewReader(""))
	requireReason(t, err, validators.ReasonUnsupportedImage)
}

func TestImageService_OpenImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock.NewMockImageStorage(ctrl)
	svc := NewImageService(images, fixedIDs("x"), logger.Nop())

	file := mock.NewMockImageFile(ctrl)
	images.EXPECT().OpenImage(gomock.Any(), "a.png").Return(file, nil)
	images.EXPECT().OpenImage(gomock.Any(), "b.png").Return(nil, store.ErrImageNotFound)

	got, err := svc.OpenImage(context.Background(), "a.png")
	require.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = svc.OpenImage(context.Background(), "b.png")
	assert.ErrorIs(t, err, store.ErrImageNotFound)
}
