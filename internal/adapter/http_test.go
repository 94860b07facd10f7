// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) DirectoryClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPDirectoryClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://directory.example.com/", want: "https://directory.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPDirectoryClient_EmptyBaseURL(t *testing.T) {
	_, err := NewHTTPDirectoryClient(Config{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyBaseURL)
}

func TestLogin_StoresToken(t *testing.T) {
	var gotBody models.LoginRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: "abc", TokenType: "Bearer"})
	})

	resp, err := client.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)

	assert.Equal(t, "abc", resp.AccessToken)
	assert.Equal(t, "abc", client.Token())
	assert.Equal(t, "alice", gotBody.Username)
}

func TestLogin_WrongCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "wrong username or password"})
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong username or password")
	assert.Empty(t, client.Token())
}

func TestRequests_CarryBearerToken(t *testing.T) {
	var authorization string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, models.Company{Name: "Acme"})
	})
	client.SetToken("  tok  ")

	_, err := client.GetCompany(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", authorization)
}

func TestRequests_NoTokenNoHeader(t *testing.T) {
	var authorization string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, models.ListResponse[models.User]{Items: []models.User{}})
	})

	_, err := client.ListUsers(context.Background(), models.UserQuery{})
	require.NoError(t, err)
	assert.Empty(t, authorization)
}

func TestListCompanies_QueryParams(t *testing.T) {
	var query map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies", r.URL.Path)
		query = map[string]string{}
		for key := range r.URL.Query() {
			query[key] = r.URL.Query().Get(key)
		}
		writeJSON(w, http.StatusOK, models.ListResponse[models.Company]{
			Items: []models.Company{{Name: "Acme"}},
			Page:  2,
			Size:  5,
		})
	})

	got, err := client.ListCompanies(context.Background(), models.CompanyQuery{
		Name: "ac",
		Mode: models.CompanyModePublished,
		Page: models.Page{Number: 2, Size: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"name": "ac", "mode": "PUBLISHED", "page": "2", "size": "5"}, query)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Acme", got.Items[0].Name)
	assert.Equal(t, 2, got.Page)
}

func TestListUsers_CompanyFilter(t *testing.T) {
	companyID := uuid.New()
	var gotCompanyID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCompanyID = r.URL.Query().Get("company_id")
		writeJSON(w, http.StatusOK, models.ListResponse[models.User]{Items: []models.User{}})
	})

	_, err := client.ListUsers(context.Background(), models.UserQuery{CompanyID: &companyID})
	require.NoError(t, err)
	assert.Equal(t, companyID.String(), gotCompanyID)
}

func TestVersion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("1.2.3"))
	})

	got, err := client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestDelete_NoContent(t *testing.T) {
	id := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users/"+id.String(), r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteUser(context.Background(), id))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, models.ErrorResponse{Error: "boom"})
			})

			err := client.DeleteCompany(context.Background(), uuid.New())
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestErrorMapping_UnknownStatusWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := client.GetUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewHTTPDirectoryClient(Config{BaseURL: url, Timeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = client.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version request")
}
