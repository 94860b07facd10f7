// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/MKhiriev/go-company-directory/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the user's e-mail address.
	FieldEmail = "email"

	// FieldUsername targets the user's login name.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password of a user input.
	FieldPassword = "password"

	// FieldPersonName targets first_name and last_name together.
	FieldPersonName = "person_name"

	// FieldCompanyName targets the company name.
	FieldCompanyName = "name"

	// FieldMode targets the company mode.
	FieldMode = "mode"

	// FieldRating targets the company rating.
	FieldRating = "rating"

	// FieldPage targets the 1-based page number of a listing.
	FieldPage = "page"

	// FieldPageSize targets the page size of a listing.
	FieldPageSize = "size"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordLength = 72
	MaxUsernameLength = 150
	MaxNameLength     = 255
	MinRating         = 0
	MaxRating         = 5
)

// DirectoryValidator implements [Validator] for the user and company inputs
// and the listing queries of the directory API.
//
// Every model is accepted by value and by pointer. Without field names all
// fields of the model are checked.
type DirectoryValidator struct{}

// NewDirectoryValidator constructs a new DirectoryValidator
// and returns it as the Validator interface.
func NewDirectoryValidator() Validator {
	return &DirectoryValidator{}
}

// Validate dispatches validation to the type-specific method for obj.
// Returns ErrUnsupportedType for any other type.
func (v *DirectoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserInput:
		return v.validateUserInput(ctx, value, fields...)
	case *models.UserInput:
		return v.validateUserInput(ctx, *value, fields...)

	case models.CompanyInput:
		return v.validateCompanyInput(ctx, value, fields...)
	case *models.CompanyInput:
		return v.validateCompanyInput(ctx, *value, fields...)

	case models.Page:
		return v.validatePage(ctx, value, fields...)
	case *models.Page:
		return v.validatePage(ctx, *value, fields...)

	case models.UserQuery:
		return v.validatePage(ctx, value.Page)
	case *models.UserQuery:
		return v.validatePage(ctx, value.Page)

	case models.CompanyQuery:
		return v.validateCompanyQuery(ctx, value)
	case *models.CompanyQuery:
		return v.validateCompanyQuery(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *DirectoryValidator) validateUserInput(_ context.Context, in models.UserInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword, FieldPersonName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !govalidator.IsEmail(in.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if !isValidUsername(in.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(in.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(in.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		case FieldPersonName:
			if utf8.RuneCountInString(in.FirstName) > MaxNameLength || utf8.RuneCountInString(in.LastName) > MaxNameLength {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DirectoryValidator) validateCompanyInput(_ context.Context, in models.CompanyInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyName, FieldMode, FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyName:
			if strings.TrimSpace(in.Name) == "" {
				return ErrEmptyCompanyName
			}
			if utf8.RuneCountInString(in.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldMode:
			if !in.Mode.IsValid() {
				return ErrInvalidMode
			}
		case FieldRating:
			if in.Rating < MinRating || in.Rating > MaxRating {
				return ErrInvalidRating
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DirectoryValidator) validatePage(_ context.Context, page models.Page, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldPageSize}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if page.Number < 1 || page.OffsetOverflows() {
				return ErrInvalidPageNumber
			}
		case FieldPageSize:
			if page.Size < 1 {
				return ErrInvalidPageSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DirectoryValidator) validateCompanyQuery(ctx context.Context, query models.CompanyQuery) error {
	if query.Mode != "" && !query.Mode.IsValid() {
		return ErrInvalidMode
	}

	return v.validatePage(ctx, query.Page)
}

// isValidUsername accepts 1 to MaxUsernameLength letters, digits and the
// characters ".", "_", "-" and "@".
func isValidUsername(username string) bool {
	n := utf8.RuneCountInString(username)
	if n == 0 || n > MaxUsernameLength {
		return false
	}

	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case '.', '_', '-', '@':
			continue
		}
		return false
	}

	return true
}
