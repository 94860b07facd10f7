// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

// companyRepository is the SQL implementation of [CompanyRepository].
type companyRepository struct {
	*DB
	logger *logger.Logger
}

// NewCompanyRepository constructs a [CompanyRepository] backed by the
// provided database connection and logger.
func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *companyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.queries.insertCompany(company)
	if err != nil {
		return models.Company{}, err
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "companyRepository.CreateCompany").
			Str("name", company.Name).
			Msg("failed to insert company")
		return models.Company{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return company, nil
}

func (c *companyRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.queries.selectCompanyByID(id)
	if err != nil {
		return models.Company{}, err
	}

	company, err := scanCompany(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, ErrCompanyNotFound
		}
		log.Err(err).
			Str("func", "companyRepository.FindCompanyByID").
			Stringer("company_id", id).
			Msg("failed to scan company row")
		return models.Company{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return company, nil
}

// ListCompanies returns the companies matching companyQuery's filters,
// ordered by creation time and offset-limited by its page.
func (c *companyRepository) ListCompanies(ctx context.Context, companyQuery models.CompanyQuery) ([]models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.queries.selectCompanies(companyQuery)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.ListCompanies").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.ListCompanies").
			Str("name", companyQuery.Name).
			Int("page", companyQuery.Number).
			Msg("failed to execute query for listing companies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0, companyQuery.Limit())
	for rows.Next() {
		company, scanErr := scanCompany(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "companyRepository.ListCompanies").
				Msg("failed to scan company row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		companies = append(companies, company)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "companyRepository.ListCompanies").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return companies, nil
}

// UpdateCompany overwrites name, description, mode, rating and updated_at
// of the company identified by company.ID.
func (c *companyRepository) UpdateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.queries.updateCompany(company)
	if err != nil {
		return models.Company{}, err
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.UpdateCompany").
			Stringer("company_id", company.ID).
			Msg("failed to update company")
		return models.Company{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = expectAffected(result, ErrCompanyNotFound); err != nil {
		return models.Company{}, err
	}

	return company, nil
}

func (c *companyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := c.queries.deleteCompany(id)
	if err != nil {
		return err
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.DeleteCompany").
			Stringer("company_id", id).
			Msg("failed to delete company")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCompanyNotFound)
}

func scanCompany(row rowScanner) (models.Company, error) {
	var company models.Company
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Description,
		&company.Mode,
		&company.Rating,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	company.CreatedAt = company.CreatedAt.UTC()
	company.UpdatedAt = company.UpdatedAt.UTC()
	return company, err
}
