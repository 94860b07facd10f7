// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest carries the credentials exchanged for an access token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
