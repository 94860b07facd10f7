// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/users", h.listUsers)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users", h.createUser)
		r.Get("/api/users/{id}", h.getUser)
		r.Put("/api/users/{id}", h.updateUser)
		r.Delete("/api/users/{id}", h.deleteUser)

		r.Get("/api/companies", h.listCompanies)
		r.Post("/api/companies", h.createCompany)
		r.Get("/api/companies/{id}", h.getCompany)
		r.Put("/api/companies/{id}", h.updateCompany)
		r.Delete("/api/companies/{id}", h.deleteCompany)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
