// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

// listCompanies serves GET /api/companies?name=&mode=&page=&size=.
func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, h.defaultPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	query := models.CompanyQuery{
		Name: q.Get("name"),
		Mode: models.CompanyMode(q.Get("mode")),
		Page: page,
	}

	companies, err := h.services.CompanyService.ListCompanies(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, companies, http.StatusOK)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.services.CompanyService.GetCompany(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusOK)
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CompanyInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.services.CompanyService.CreateCompany(r.Context(), caller, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusCreated)
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
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

	var input models.CompanyInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.services.CompanyService.UpdateCompany(r.Context(), caller, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, company, http.StatusOK)
}

func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.CompanyService.DeleteCompany(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
