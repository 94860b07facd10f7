// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/validators"
	"github.com/MKhiriev/go-company-directory/models"
)

// paginator validates listing pages and caps their size.
type paginator struct {
	maxSize   int
	validator validators.Validator
}

func newPaginator(cfg config.Pagination, validator validators.Validator) paginator {
	return paginator{
		maxSize:   cfg.MaxSize,
		validator: validator,
	}
}

// page checks query (a models.UserQuery or models.CompanyQuery) and returns
// its page with the size capped at maxSize.
func (p paginator) page(ctx context.Context, query any, page models.Page) (models.Page, error) {
	if err := p.validator.Validate(ctx, query); err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if p.maxSize > 0 && page.Size > p.maxSize {
		page.Size = p.maxSize
	}

	return page, nil
}
