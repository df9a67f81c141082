// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
)

// imageFileStorage keeps uploaded images as flat files inside one directory.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage creates dir when missing and returns an
// [ImageStorage] rooted at it.
func NewImageFileStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageFileStorage").Str("dir", dir).Msg("failed to create images directory")
		return nil, fmt.Errorf("%w: %w", ErrImageStore, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveImage writes r to <dir>/<name>. Existing files are not overwritten.
func (s *imageFileStorage) SaveImage(ctx context.Context, name string, r io.Reader) error {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Str("name", name).Msg("failed to create image file")
		return fmt.Errorf("%w: %w", ErrImageStore, err)
	}

	if _, err = io.Copy(file, r); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Str("name", name).Msg("failed to write image file")
		return fmt.Errorf("%w: %w", ErrImageStore, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrImageStore, err)
	}

	return nil
}

// OpenImage returns [ErrImageNotFound] for missing files and directories.
func (s *imageFileStorage) OpenImage(ctx context.Context, name string) (ImageFile, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageFileStorage.OpenImage").Str("name", name).Msg("failed to open image")
		return nil, fmt.Errorf("%w: %w", ErrImageStore, err)
	}

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		_ = file.Close()
		return nil, ErrImageNotFound
	}

	return &imageFile{File: file, modTime: info.ModTime()}, nil
}

// path keeps name inside the images directory.
func (s *imageFileStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidImageName
	}
	return filepath.Join(s.dir, name), nil
}

type imageFile struct {
	*os.File
	modTime time.Time
}

func (f *imageFile) ModTime() time.Time {
	return f.modTime
}
