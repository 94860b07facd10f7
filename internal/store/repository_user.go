// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account persistence against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given; identifiers and timestamps are assigned
// by the caller.
//
// Error handling:
//   - unique violation on username/email → [ErrUserAlreadyExists].
//   - unknown company_id → [ErrUnknownCompanyReference].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertUser(user)
	if err != nil {
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		return models.User{}, r.db.classify(err, ErrExecutingStatement)
	}

	return user, nil
}

// FindUserByID returns the user with the given identifier or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	query, args, err := r.db.queries.selectUserBy("id", id)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// FindUserByUsername returns the user with the given username or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := r.db.queries.selectUserBy("username", username)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListActiveUsers returns one page of active users. An empty page yields an
// empty, non-nil slice.
func (r *userRepository) ListActiveUsers(ctx context.Context, userQuery models.UserQuery) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectActiveUsers(userQuery)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListActiveUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, userQuery.Limit())
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListActiveUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListActiveUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser overwrites every mutable column of the user identified by
// user.ID. Returns [ErrUserNotFound] when no row was changed.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.updateUser(user)
	if err != nil {
		return models.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Stringer("user_id", user.ID).Msg("error updating user")
		return models.User{}, r.db.classify(err, ErrExecutingStatement)
	}

	if err = expectAffected(result, ErrUserNotFound); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser removes the user with the given identifier. Returns
// [ErrUserNotFound] when no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.deleteUser(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Stringer("user_id", id).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one user row; timestamps are normalized to UTC.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.HashedPassword,
		&user.IsActive,
		&user.IsAdmin,
		&user.CompanyID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, err
}

// expectAffected returns notFound if result reports zero affected rows.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
