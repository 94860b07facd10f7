// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations for every supported
// dialect and applies them on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when called without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

// dialects maps a storage driver name to the goose dialect and the
// directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"postgres": {goose: "postgres", dir: "postgres"},
	"sqlite":   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for driver ("postgres" or
// "sqlite") to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unknown driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
