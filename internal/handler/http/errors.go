// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoCallerInContext is returned when a protected handler runs without
	// the auth middleware having stored a caller.
	ErrNoCallerInContext = errors.New("no authenticated caller in request context")

	ErrInvalidJSON           = errors.New("invalid JSON was passed")
	ErrInvalidIdentifier     = errors.New("invalid identifier")
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
