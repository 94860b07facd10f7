// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/internal/validators"
	"github.com/MKhiriev/go-company-directory/models"
)

type companyService struct {
	companyRepository store.CompanyRepository

	validator validators.Validator
	paginator paginator

	ids *utils.UUIDGenerator

	// now is the clock used for created_at and updated_at.
	now func() time.Time

	logger *logger.Logger
}

func NewCompanyService(companyRepository store.CompanyRepository, cfg config.Pagination, logger *logger.Logger) CompanyService {
	validator := validators.NewDirectoryValidator()
	return &companyService{
		companyRepository: companyRepository,
		validator:         validator,
		paginator:         newPaginator(cfg, validator),
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// ListCompanies returns the companies on the requested page whose name
// contains query.Name (ignoring case) and whose mode equals query.Mode.
// Empty filters are not applied.
func (s *companyService) ListCompanies(ctx context.Context, query models.CompanyQuery) (models.ListResponse[models.Company], error) {
	log := logger.FromContext(ctx)

	page, err := s.paginator.page(ctx, query, query.Page)
	if err != nil {
		log.Err(err).Int("page", query.Number).Int("size", query.Size).Msg("invalid company listing query")
		return models.ListResponse[models.Company]{}, err
	}
	query.Page = page

	companies, err := s.companyRepository.ListCompanies(ctx, query)
	if err != nil {
		log.Err(err).Str("name", query.Name).Msg("listing companies failed")
		return models.ListResponse[models.Company]{}, fmt.Errorf("listing companies failed: %w", err)
	}

	return models.NewListResponse(companies, page), nil
}

func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (models.Company, error) {
	company, err := s.companyRepository.FindCompanyByID(ctx, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("company search by id failed: %w", err)
	}

	return company, nil
}

// CreateCompany stores a new company. created_at and updated_at carry the
// same instant. An empty mode defaults to DRAFT.
func (s *companyService) CreateCompany(ctx context.Context, caller models.User, input models.CompanyInput) (models.Company, error) {
	log := logger.FromContext(ctx)

	if err := RequireAdmin(caller); err != nil {
		log.Warn().Stringer("caller_id", caller.ID).Msg("non-admin tried to create a company")
		return models.Company{}, err
	}

	input = withDefaultMode(input)
	if err := s.validator.Validate(ctx, input); err != nil {
		log.Err(err).Str("name", input.Name).Msg("invalid company data provided")
		return models.Company{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := timestamp(s.now)
	company := models.Company{
		ID:          s.ids.Generate(),
		Name:        input.Name,
		Description: input.Description,
		Mode:        input.Mode,
		Rating:      input.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.companyRepository.CreateCompany(ctx, company)
	if err != nil {
		log.Err(err).Str("name", company.Name).Msg("company creation ended with error")
		return models.Company{}, fmt.Errorf("company creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateCompany overwrites name, description, mode and rating of the company
// identified by id and refreshes updated_at.
func (s *companyService) UpdateCompany(ctx context.Context, caller models.User, id uuid.UUID, input models.CompanyInput) (models.Company, error) {
	log := logger.FromContext(ctx)

	if err := RequireAdmin(caller); err != nil {
		return models.Company{}, err
	}

	input = withDefaultMode(input)
	if err := s.validator.Validate(ctx, input); err != nil {
		log.Err(err).Stringer("company_id", id).Msg("invalid company data provided")
		return models.Company{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	company, err := s.companyRepository.FindCompanyByID(ctx, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("company search by id failed: %w", err)
	}

	company.Name = input.Name
	company.Description = input.Description
	company.Mode = input.Mode
	company.Rating = input.Rating
	company.UpdatedAt = timestamp(s.now)

	updated, err := s.companyRepository.UpdateCompany(ctx, company)
	if err != nil {
		log.Err(err).Stringer("company_id", id).Msg("company update ended with error")
		return models.Company{}, fmt.Errorf("company update ended with error: %w", err)
	}

	return updated, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, caller models.User, id uuid.UUID) error {
	if err := RequireAdmin(caller); err != nil {
		return err
	}

	if _, err := s.companyRepository.FindCompanyByID(ctx, id); err != nil {
		return fmt.Errorf("company search by id failed: %w", err)
	}

	if err := s.companyRepository.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("company deletion ended with error: %w", err)
	}

	return nil
}

func withDefaultMode(input models.CompanyInput) models.CompanyInput {
	if input.Mode == "" {
		input.Mode = models.CompanyModeDraft
	}
	return input
}
