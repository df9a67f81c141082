// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// FirstImageURL returns the first URL of an images column value. The value is
// either a plain URL or an R-style vector such as `c("u1", "u2")`;
// `character(0)` and blanks yield "".
func FirstImageURL(images string) string {
	value := strings.TrimSpace(images)
	if value == "" || value == "character(0)" || value == "NA" {
		return ""
	}

	if strings.HasPrefix(value, "c(") && strings.HasSuffix(value, ")") {
		value = strings.TrimSuffix(strings.TrimPrefix(value, "c("), ")")
		if first, _, found := strings.Cut(value, ","); found {
			value = first
		}
	}

	return strings.Trim(strings.TrimSpace(value), `"'`)
}
