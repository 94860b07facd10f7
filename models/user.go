// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can authenticate against the API.
// Only active users are listed publicly; admins may manage every account.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Username is the unique login name used to obtain a token.
	Username string `json:"username"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// HashedPassword is the bcrypt hash of the user's password.
	// It never leaves the server.
	HashedPassword string `json:"-"`

	// IsActive reports whether the account may log in and is listed.
	IsActive bool `json:"is_active"`

	// IsAdmin grants access to every write and admin-only read endpoint.
	IsAdmin bool `json:"is_admin"`

	// CompanyID optionally links the user to a company.
	CompanyID *uuid.UUID `json:"company_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInput is the request body accepted by the create and update user
// endpoints. Update replaces every field; an empty Password keeps the
// current password.
type UserInput struct {
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Password  string     `json:"password"`
	IsActive  *bool      `json:"is_active,omitempty"`
	IsAdmin   bool       `json:"is_admin"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// Active returns the requested active flag, defaulting to true.
func (in UserInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}

// UserQuery holds the optional filters and paging of a user listing.
type UserQuery struct {
	CompanyID *uuid.UUID
	Page
}
