// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/internal/utils"
	"github.com/MKhiriev/go-meal-planner/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "")
		return
	}

	session, token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "Login failed")
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.LoginResponse{
		Response: models.OK("Login successful"),
		Admin:    session.Admin,
	}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "Signup failed")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, models.OK("User created successfully"), http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeFail(w, "No user is logged in", http.StatusBadRequest)
		return
	}

	h.services.AuthService.Logout(r.Context(), caller.SessionID)
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.OK("Logout successful"), http.StatusOK)
}

func (h *Handler) whoAmI(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.WhoAmI(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, r, err, "Failed to load user")
		return
	}

	utils.WriteJSON(w, models.WhoAmIResponse{
		Response: models.OK(""),
		User:     user.Username,
		Admin:    user.Admin,
	}, http.StatusOK)
}

func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	var update models.EmailUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "")
		return
	}

	if err := h.services.AuthService.UpdateEmail(r.Context(), identity(r).UserID, update); err != nil {
		writeError(w, r, err, "Failed to update email")
		return
	}

	utils.WriteJSON(w, models.OK("Email updated successfully"), http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var update models.PasswordUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "")
		return
	}

	if err := h.services.AuthService.UpdatePassword(r.Context(), identity(r).UserID, update); err != nil {
		writeError(w, r, err, "Failed to update password")
		return
	}

	utils.WriteJSON(w, models.OK("Password updated successfully"), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.DeleteAccount(r.Context(), identity(r)); err != nil {
		writeError(w, r, err, "Failed to delete account")
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.OK("Account deleted successfully"), http.StatusOK)
}
