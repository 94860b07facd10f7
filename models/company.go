// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyMode is the publication state of a company.
type CompanyMode string

const (
	CompanyModeDraft     CompanyMode = "DRAFT"
	CompanyModePublished CompanyMode = "PUBLISHED"
	CompanyModeArchived  CompanyMode = "ARCHIVED"
)

// IsValid reports whether m is one of the known company modes.
func (m CompanyMode) IsValid() bool {
	switch m {
	case CompanyModeDraft, CompanyModePublished, CompanyModeArchived:
		return true
	}
	return false
}

// Company is an organisation users may belong to.
type Company struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Mode        CompanyMode `json:"mode"`
	Rating      int         `json:"rating"`

	// CreatedAt and UpdatedAt are assigned by the server. On creation both
	// carry the same instant.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Company model.
func (c Company) TableName() string {
	return "companies"
}

// CompanyInput is the request body of the create and full-field update
// company endpoints.
type CompanyInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Mode        CompanyMode `json:"mode"`
	Rating      int         `json:"rating"`
}

// CompanyQuery holds the optional filters and paging of a company listing.
type CompanyQuery struct {
	// Name matches companies whose name contains it, ignoring case.
	Name string

	// Mode matches companies in exactly this mode.
	Mode CompanyMode

	Page
}
