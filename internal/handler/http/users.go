// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

// listUsers serves GET /api/users?page=&size=&company_id=. It is public and
// lists active users only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, h.defaultPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := models.UserQuery{Page: page}
	if v := r.URL.Query().Get("company_id"); v != "" {
		companyID, parseErr := uuid.Parse(v)
		if parseErr != nil {
			writeError(w, r, fmt.Errorf("%w: company_id: %w", ErrInvalidQueryParameter, parseErr))
			return
		}
		query.CompanyID = &companyID
	}

	users, err := h.services.UserService.ListUsers(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.UserInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), caller, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.UserInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), caller, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
