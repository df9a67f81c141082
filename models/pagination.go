// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

const (
	DefaultPerPage = 20
	MaxPerPage     = 100

	// MaxPage keeps (MaxPage-1)*MaxPerPage within int.
	MaxPage = math.MaxInt / MaxPerPage
)

// PageRequest is an offset pagination request.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest normalizes raw page parameters: page below 1 becomes 1
// and is capped at [MaxPage], per-page below 1 becomes [DefaultPerPage] and
// is capped at [MaxPerPage]. Pages past the last simply come back empty.
func NewPageRequest(page, perPage int) PageRequest {
	page = min(max(page, 1), MaxPage)
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return PageRequest{Page: page, PerPage: perPage}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pagination describes the page returned to the client.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination computes total_pages as ceil(total / per_page).
func NewPagination(req PageRequest, total int64) Pagination {
	perPage := int64(req.PerPage)
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	return Pagination{
		Page:       req.Page,
		PerPage:    req.PerPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// Page is a single page of results.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
