// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const jsonContentType = "application/json"

// marshalFailure is sent when a response body cannot be encoded.
var marshalFailure = []byte(`{"success":false,"message":"Internal server error"}`)

// WriteJSON encodes data as the response body with the given status and
// returns the number of body bytes written. An unencodable value is
// replaced by a 500 failure envelope and the encoding error is returned.
//
//	utils.WriteJSON(w, models.Fail("Recipe not found"), http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", jsonContentType)

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailure)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}
