// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrPasswordTooLong   = errors.New("password is too long")
	ErrNameTooLong       = errors.New("name is too long")
	ErrEmptyCompanyName  = errors.New("company name is required")
	ErrInvalidMode       = errors.New("invalid company mode")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrInvalidPageNumber = errors.New("page must be a positive number")
	ErrInvalidPageSize   = errors.New("size must be a positive number")
)
