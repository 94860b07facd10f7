// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// company-directory HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON response bodies.
package app

const (
	// MsgInvalidDataProvided is returned when a decoded request body fails
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidIdentifier is returned when a path identifier is not a UUID.
	MsgInvalidIdentifier = "invalid identifier"

	// MsgInvalidQueryParameter is returned when page, size or a filter in
	// the query string cannot be parsed.
	MsgInvalidQueryParameter = "invalid query parameter"

	// MsgInvalidGzipBody is returned when a gzip-encoded body cannot be read.
	MsgInvalidGzipBody = "invalid gzip data"

	// MsgUnknownCompany is returned when a user references a company that
	// does not exist.
	MsgUnknownCompany = "referenced company does not exist"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match an active user.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInactiveUser is returned when a deactivated account logs in or
	// presents a token.
	MsgInactiveUser = "user is inactive"

	// MsgAuthorizationRequired is returned when a protected endpoint is
	// called without a usable bearer token.
	MsgAuthorizationRequired = "authorization required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when a non-admin caller invokes an
	// admin-only endpoint.
	MsgAccessDenied = "access denied"

	MsgUserNotFound    = "user not found"
	MsgCompanyNotFound = "company not found"
	MsgNotFound        = "not found"

	// MsgUserAlreadyExists is returned when the username or e-mail of a
	// created or updated user is already taken.
	MsgUserAlreadyExists = "user with this username or email already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
