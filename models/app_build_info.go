// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const buildInfoUnknown = "N/A"

// AppBuildInfo is the build metadata linked into the server binary with
// -ldflags "-X main.buildVersion=...". Unset values read as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo builds [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// HasVersion reports whether a version was linked in.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != buildInfoUnknown
}

func orUnknown(value string) string {
	if value == "" {
		return buildInfoUnknown
	}
	return value
}
