// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the company-directory HTTP API.
//
// The primary abstraction is [DirectoryClient]. Its HTTP implementation
// ([NewHTTPDirectoryClient]) handles JSON serialisation, bearer token
// management and mapping of error responses to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/models"
)

// DirectoryClient talks to a company-directory server.
type DirectoryClient interface {
	// SetToken stores the bearer token attached to every later request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	ListUsers(ctx context.Context, query models.UserQuery) (models.ListResponse[models.User], error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, input models.UserInput) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input models.UserInput) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	ListCompanies(ctx context.Context, query models.CompanyQuery) (models.ListResponse[models.Company], error)
	GetCompany(ctx context.Context, id uuid.UUID) (models.Company, error)
	CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, input models.CompanyInput) (models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}
