// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks directory input before it reaches storage:
// user and company payloads, list pages and company filters.
//
// Services hold a [Validator] and call Validate with the value and,
// optionally, the names of the fields to check (see the Field* constants).
// With no field names every rule for the value's type is applied.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
