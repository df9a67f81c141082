// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Backend is live"}, http.StatusOK)
}

func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.OK("pong"), http.StatusOK)
}
