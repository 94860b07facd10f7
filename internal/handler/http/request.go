// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

// maxBodyBytes limits request bodies accepted by decodeJSON.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}
	return id, nil
}

// pageFromQuery reads page and size from the query string. Missing values
// default to the first page and defaultSize; present values are passed on
// unchanged for the service to validate.
func pageFromQuery(r *http.Request, defaultSize int) (models.Page, error) {
	page := models.Page{Number: 1, Size: defaultSize}
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: page: %w", ErrInvalidQueryParameter, err)
		}
		page.Number = n
	}

	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: size: %w", ErrInvalidQueryParameter, err)
		}
		page.Size = n
	}

	return page, nil
}

// callerFromRequest returns the user stored by the auth middleware.
func callerFromRequest(r *http.Request) (models.User, error) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoCallerInContext
	}
	return caller, nil
}
