// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
)

// Services groups every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	CompanyService CompanyService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, cfg.Pagination, logger),
		CompanyService: NewCompanyService(storages.CompanyRepository, cfg.Pagination, logger),
		AppInfoService: appInfoService,
	}, nil
}
