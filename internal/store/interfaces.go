// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
	"github.com/google/uuid"
)

// UserRepository persists [models.User] records in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListActiveUsers returns one page of users whose active flag is set,
	// narrowed by the optional filters in query.
	ListActiveUsers(ctx context.Context, query models.UserQuery) ([]models.User, error)

	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CompanyRepository persists [models.Company] records in the "companies" table.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	FindCompanyByID(ctx context.Context, id uuid.UUID) (models.Company, error)

	// ListCompanies returns one page of companies matching the optional
	// filters in query.
	ListCompanies(ctx context.Context, query models.CompanyQuery) ([]models.Company, error)

	UpdateCompany(ctx context.Context, company models.Company) (models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

// ErrorClassificator maps a driver error onto an [ErrorClassification] so
// repositories can translate constraint violations into domain errors
// without knowing which database they talk to.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
