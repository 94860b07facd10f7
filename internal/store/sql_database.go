// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/migrations"
)

// DB is a *sql.DB bound to one dialect. It carries the query builder and
// the error classifier matching the driver it was opened with.
type DB struct {
	*sql.DB
	driver             string
	queries            *queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection for the driver named in cfg.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Driver returns the name of the driver the connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify maps a failed statement's error to a domain error using the
// dialect's classifier. Errors that are not constraint violations are
// wrapped with fallback.
func (db *DB) classify(err error, fallback error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrUnknownCompanyReference, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
