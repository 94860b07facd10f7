// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the company directory.
// It provides the chi router, middleware (tracing, access logging, gzip,
// bearer authentication) and the handlers for the /api/auth, /api/users,
// /api/companies and /api/version endpoints. Handlers decode requests,
// call the service layer and map its errors onto HTTP status codes with
// JSON error bodies.
package http
