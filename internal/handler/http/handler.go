// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
)

type Handler struct {
	services *service.Services

	// defaultPageSize is used when a list request omits size.
	defaultPageSize int

	// requestTimeout bounds every request; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		defaultPageSize: cfg.Pagination.DefaultSize,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}
