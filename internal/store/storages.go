// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
)

// Storages groups the repositories backed by one database connection.
type Storages struct {
	UserRepository    UserRepository
	CompanyRepository CompanyRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		CompanyRepository: NewCompanyRepository(db, logger),
		db:                db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
