// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListResponse wraps a page of results returned by the list endpoints.
type ListResponse[T any] struct {
	Items []T `json:"items"`

	// Page and Size echo the paging that produced Items.
	Page int `json:"page"`
	Size int `json:"size"`

	// Length is the number of entries in Items.
	Length int `json:"length"`
}

// NewListResponse builds a [ListResponse] for items fetched with page.
// A nil slice is replaced with an empty one so it encodes as [].
func NewListResponse[T any](items []T, page Page) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items:  items,
		Page:   page.Number,
		Size:   page.Size,
		Length: len(items),
	}
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
