// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

const defaultTimeout = 15 * time.Second

// Config describes the server a [DirectoryClient] talks to.
type Config struct {
	// BaseURL is the server address, e.g. "localhost:8080" or
	// "https://directory.example.com". The scheme defaults to http.
	BaseURL string

	// Timeout bounds every request. Zero means 15 seconds.
	Timeout time.Duration
}

type httpDirectoryClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDirectoryClient constructs an HTTP implementation of
// [DirectoryClient]. It returns an error if cfg.BaseURL is empty or is not a
// valid URL.
func NewHTTPDirectoryClient(cfg Config, logger *logger.Logger) (DirectoryClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpDirectoryClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpDirectoryClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpDirectoryClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpDirectoryClient) Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error) {
	token, err := doJSON[models.TokenResponse](c.request(ctx).SetBody(request), http.MethodPost, "/api/auth/token")
	if err != nil {
		return models.TokenResponse{}, err
	}

	c.SetToken(token.AccessToken)
	c.logger.Debug().Str("username", request.Username).Msg("logged in")
	return token, nil
}

func (c *httpDirectoryClient) Version(ctx context.Context) (string, error) {
	resp, err := c.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (c *httpDirectoryClient) ListUsers(ctx context.Context, query models.UserQuery) (models.ListResponse[models.User], error) {
	req := c.request(ctx).SetQueryParams(pageParams(query.Page))
	if query.CompanyID != nil {
		req.SetQueryParam("company_id", query.CompanyID.String())
	}
	return doJSON[models.ListResponse[models.User]](req, http.MethodGet, "/api/users")
}

func (c *httpDirectoryClient) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return doJSON[models.User](c.request(ctx), http.MethodGet, userPath(id))
}

func (c *httpDirectoryClient) CreateUser(ctx context.Context, input models.UserInput) (models.User, error) {
	return doJSON[models.User](c.request(ctx).SetBody(input), http.MethodPost, "/api/users")
}

func (c *httpDirectoryClient) UpdateUser(ctx context.Context, id uuid.UUID, input models.UserInput) (models.User, error) {
	return doJSON[models.User](c.request(ctx).SetBody(input), http.MethodPut, userPath(id))
}

func (c *httpDirectoryClient) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return doNoContent(c.request(ctx), http.MethodDelete, userPath(id))
}

func (c *httpDirectoryClient) ListCompanies(ctx context.Context, query models.CompanyQuery) (models.ListResponse[models.Company], error) {
	req := c.request(ctx).SetQueryParams(pageParams(query.Page))
	if query.Name != "" {
		req.SetQueryParam("name", query.Name)
	}
	if query.Mode != "" {
		req.SetQueryParam("mode", string(query.Mode))
	}
	return doJSON[models.ListResponse[models.Company]](req, http.MethodGet, "/api/companies")
}

func (c *httpDirectoryClient) GetCompany(ctx context.Context, id uuid.UUID) (models.Company, error) {
	return doJSON[models.Company](c.request(ctx), http.MethodGet, companyPath(id))
}

func (c *httpDirectoryClient) CreateCompany(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	return doJSON[models.Company](c.request(ctx).SetBody(input), http.MethodPost, "/api/companies")
}

func (c *httpDirectoryClient) UpdateCompany(ctx context.Context, id uuid.UUID, input models.CompanyInput) (models.Company, error) {
	return doJSON[models.Company](c.request(ctx).SetBody(input), http.MethodPut, companyPath(id))
}

func (c *httpDirectoryClient) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return doNoContent(c.request(ctx), http.MethodDelete, companyPath(id))
}

// request starts a request carrying the stored bearer token, if any.
func (c *httpDirectoryClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func doJSON[T any](req *resty.Request, method, path string) (T, error) {
	var out T
	resp, err := req.SetResult(&out).Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	return out, nil
}

func doNoContent(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func pageParams(page models.Page) map[string]string {
	params := map[string]string{}
	if page.Number != 0 {
		params["page"] = strconv.Itoa(page.Number)
	}
	if page.Size != 0 {
		params["size"] = strconv.Itoa(page.Size)
	}
	return params
}

func userPath(id uuid.UUID) string {
	return "/api/users/" + id.String()
}

func companyPath(id uuid.UUID) string {
	return "/api/companies/" + id.String()
}
