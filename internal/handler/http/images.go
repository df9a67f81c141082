// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/internal/validators"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadBytes bounds multipart image uploads.
const maxUploadBytes = 16 << 20

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			writeFail(w, validators.ReasonNoFile, http.StatusBadRequest)
			return
		}
		writeError(w, r, err, "Failed to read upload")
		return
	}
	defer file.Close()

	url, err := h.services.ImageService.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, r, err, "Failed to store image")
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Response: models.OK("Image uploaded successfully"), URL: url}, http.StatusOK)
}

func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	file, err := h.services.ImageService.OpenImage(r.Context(), chi.URLParam(r, "filename"))
	if err != nil {
		writeError(w, r, err, "Failed to open image")
		return
	}
	defer file.Close()

	http.ServeContent(w, r, file.Name(), file.ModTime(), file)
}
