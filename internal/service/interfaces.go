// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/models"
)

// UserService manages user accounts. Every method taking a caller requires
// that caller to be an admin.
type UserService interface {
	// ListUsers returns one page of active users. It needs no caller.
	ListUsers(ctx context.Context, query models.UserQuery) (models.ListResponse[models.User], error)

	GetUser(ctx context.Context, caller models.User, id uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, caller models.User, input models.UserInput) (models.User, error)
	UpdateUser(ctx context.Context, caller models.User, id uuid.UUID, input models.UserInput) (models.User, error)
	DeleteUser(ctx context.Context, caller models.User, id uuid.UUID) error

	// EnsureAdmin seeds an admin account from input when no user with its
	// username exists. It performs no caller check and is meant for startup.
	EnsureAdmin(ctx context.Context, input models.UserInput) (bool, error)
}

// CompanyService manages companies. Reads are open to any authenticated
// caller; writes require an admin.
type CompanyService interface {
	ListCompanies(ctx context.Context, query models.CompanyQuery) (models.ListResponse[models.Company], error)
	GetCompany(ctx context.Context, id uuid.UUID) (models.Company, error)

	CreateCompany(ctx context.Context, caller models.User, input models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, caller models.User, id uuid.UUID, input models.CompanyInput) (models.Company, error)
	DeleteCompany(ctx context.Context, caller models.User, id uuid.UUID) error
}

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a bearer token to the active user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
