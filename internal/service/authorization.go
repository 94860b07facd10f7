// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-company-directory/models"

// RequireAdmin returns [ErrAccessDenied] unless caller carries the admin flag.
func RequireAdmin(caller models.User) error {
	if !caller.IsAdmin {
		return ErrAccessDenied
	}
	return nil
}
