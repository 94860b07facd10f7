// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is matched top to bottom with errors.Is. Validation
// errors must precede service.ErrInvalidDataProvided, which wraps them.
// An empty message means the target's own text is sent.
var errorStatusTable = []errorStatus{
	{validators.ErrInvalidEmail, http.StatusBadRequest, ""},
	{validators.ErrInvalidUsername, http.StatusBadRequest, ""},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, ""},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, ""},
	{validators.ErrNameTooLong, http.StatusBadRequest, ""},
	{validators.ErrEmptyCompanyName, http.StatusBadRequest, ""},
	{validators.ErrInvalidMode, http.StatusBadRequest, ""},
	{validators.ErrInvalidRating, http.StatusBadRequest, ""},
	{validators.ErrInvalidPageNumber, http.StatusBadRequest, ""},
	{validators.ErrInvalidPageSize, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidIdentifier, http.StatusBadRequest, app.MsgInvalidIdentifier},
	{ErrInvalidQueryParameter, http.StatusBadRequest, app.MsgInvalidQueryParameter},
	{store.ErrUnknownCompanyReference, http.StatusBadRequest, app.MsgUnknownCompany},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrInactiveUser, http.StatusUnauthorized, app.MsgInactiveUser},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgAuthorizationRequired},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgAuthorizationRequired},
	{ErrNoCallerInContext, http.StatusUnauthorized, app.MsgAuthorizationRequired},

	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrCompanyNotFound, http.StatusNotFound, app.MsgCompanyNotFound},

	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
}

// statusFromError returns the HTTP status and client-facing message for
// err. Unknown errors map to 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, e.target.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the mapped JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
