// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/utils"
)

// CheckHTTPMethod returns a handler intended for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers with a JSON 404 whenever the
// requested method is not registered for the path, so an unsupported method
// does not reveal that the route exists. If a route with exactly the
// requested path does handle the method, the request is passed back to the
// router.
//
// Only exact pattern matches are considered; parameterised segments such as
// "{id}" are not expanded, so a wrong method on them is always a 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
