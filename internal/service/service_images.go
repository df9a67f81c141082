// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/store"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
)

// ImagesURLPrefix is the public path under which uploaded images are served.
const ImagesURLPrefix = "/uploaded_images/"

type imageService struct {
	imageStorage store.ImageStorage
	ids          IDGenerator

	logger *logger.Logger
}

func NewImageService(images store.ImageStorage, ids IDGenerator, logger *logger.Logger) ImageService {
	return &imageService{
		imageStorage: images,
		ids:          ids,
		logger:       logger,
	}
}

// UploadImage stores the file as "<uuid>.<ext>" and returns its URL.
func (s *imageService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext, err := validators.ImageExtension(filename)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", s.ids.Generate(), ext)
	if err = s.imageStorage.SaveImage(ctx, name, r); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug().Str("func", "*imageService.UploadImage").Str("name", name).Msg("image stored")
	return ImagesURLPrefix + name, nil
}

func (s *imageService) OpenImage(ctx context.Context, name string) (store.ImageFile, error) {
	return s.imageStorage.OpenImage(ctx, name)
}
