// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested
	// identifier or username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserAlreadyExists is returned when a user insert or update violates
	// the unique username or e-mail constraint.
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")

	// ErrCompanyNotFound is returned when no company matches the requested
	// identifier.
	ErrCompanyNotFound = errors.New("company was not found")

	// ErrUnknownCompanyReference is returned when a user references a
	// company that does not exist.
	ErrUnknownCompanyReference = errors.New("referenced company does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewDB] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
