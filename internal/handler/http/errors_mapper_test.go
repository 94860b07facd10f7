// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "access denied", err: service.ErrAccessDenied, wantStatus: http.StatusForbidden, wantMsg: app.MsgAccessDenied},
		{name: "user not found", err: fmt.Errorf("get: %w", store.ErrUserNotFound), wantStatus: http.StatusNotFound, wantMsg: app.MsgUserNotFound},
		{name: "company not found", err: store.ErrCompanyNotFound, wantStatus: http.StatusNotFound, wantMsg: app.MsgCompanyNotFound},
		{name: "duplicate user", err: store.ErrUserAlreadyExists, wantStatus: http.StatusConflict, wantMsg: app.MsgUserAlreadyExists},
		{
			name:       "validation rule beats generic invalid data",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidRating),
			wantStatus: http.StatusBadRequest,
			wantMsg:    validators.ErrInvalidRating.Error(),
		},
		{name: "generic invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "bad bearer header", err: utils.ErrInvalidAuthorizationHeader, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgAuthorizationRequired},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgTokenIsExpiredOrInvalid},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
		{name: "storage error", err: fmt.Errorf("%w: conn reset", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWriteError_WritesJSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrCompanyNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"company not found"}`, rec.Body.String())
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password authentication")
}
