// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and
// identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the authenticated caller is stored in
// the request context by the authentication middleware.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller models.User) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the authenticated caller from the context.
//
// Returns the caller and an ok flag:
//   - ok == true:  a caller is present
//   - ok == false: the request was not authenticated
func GetCallerFromContext(ctx context.Context) (models.User, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.User)
	return caller, ok
}
