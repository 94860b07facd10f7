// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/internal/validators"
	"github.com/MKhiriev/go-company-directory/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository

	validator validators.Validator
	paginator paginator

	ids          *utils.UUIDGenerator
	hashPassword func(password string) (string, error)
	now          func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a [UserService] over userRepository. Page sizes
// are capped at cfg.MaxSize.
func NewUserService(userRepository store.UserRepository, cfg config.Pagination, logger *logger.Logger) UserService {
	validator := validators.NewDirectoryValidator()
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		paginator:      newPaginator(cfg, validator),
		ids:            utils.NewUUIDGenerator(),
		hashPassword:   utils.HashPassword,
		now:            time.Now,
		logger:         logger,
	}
}

// ListUsers returns the active users on the requested page, optionally
// narrowed to one company.
func (s *userService) ListUsers(ctx context.Context, query models.UserQuery) (models.ListResponse[models.User], error) {
	log := logger.FromContext(ctx)

	page, err := s.paginator.page(ctx, query, query.Page)
	if err != nil {
		log.Err(err).Int("page", query.Number).Int("size", query.Size).Msg("invalid user listing query")
		return models.ListResponse[models.User]{}, err
	}
	query.Page = page

	users, err := s.userRepository.ListActiveUsers(ctx, query)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return models.ListResponse[models.User]{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.NewListResponse(users, page), nil
}

func (s *userService) GetUser(ctx context.Context, caller models.User, id uuid.UUID) (models.User, error) {
	if err := RequireAdmin(caller); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateUser validates input, hashes the password and stores a new user
// with a server-assigned identifier and timestamps.
//
// Returns:
//   - ErrAccessDenied if caller is not an admin.
//   - ErrInvalidDataProvided wrapping the validation error.
//   - store.ErrUserAlreadyExists on a duplicate username or email.
//   - store.ErrUnknownCompanyReference if input.CompanyID names no company.
func (s *userService) CreateUser(ctx context.Context, caller models.User, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := RequireAdmin(caller); err != nil {
		log.Warn().Stringer("caller_id", caller.ID).Msg("non-admin tried to create a user")
		return models.User{}, err
	}

	return s.create(ctx, input)
}

// EnsureAdmin creates an active admin account from input unless a user
// named input.Username already exists. It reports whether an account was
// created.
func (s *userService) EnsureAdmin(ctx context.Context, input models.UserInput) (bool, error) {
	log := logger.FromContext(ctx)

	_, err := s.userRepository.FindUserByUsername(ctx, input.Username)
	if err == nil {
		log.Info().Str("username", input.Username).Msg("admin account exists, skipping seed")
		return false, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return false, fmt.Errorf("admin search by username failed: %w", err)
	}

	input.IsActive = nil
	input.IsAdmin = true
	admin, err := s.create(ctx, input)
	if err != nil {
		return false, fmt.Errorf("admin seeding failed: %w", err)
	}

	log.Warn().Stringer("user_id", admin.ID).Str("username", admin.Username).Msg("admin account seeded")
	return true, nil
}

func (s *userService) create(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Err(err).Str("username", input.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	now := timestamp(s.now)
	user := models.User{
		ID:             s.ids.Generate(),
		Email:          input.Email,
		Username:       input.Username,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: hash,
		IsActive:       input.Active(),
		IsAdmin:        input.IsAdmin,
		CompanyID:      input.CompanyID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateUser replaces every field of the user identified by id. An empty
// input.Password keeps the stored password hash.
func (s *userService) UpdateUser(ctx context.Context, caller models.User, id uuid.UUID, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := RequireAdmin(caller); err != nil {
		return models.User{}, err
	}

	fields := []string{validators.FieldEmail, validators.FieldUsername, validators.FieldPersonName}
	if input.Password != "" {
		fields = append(fields, validators.FieldPassword)
	}
	if err := s.validator.Validate(ctx, input, fields...); err != nil {
		log.Err(err).Stringer("user_id", id).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if input.Password != "" {
		if user.HashedPassword, err = s.hashPassword(input.Password); err != nil {
			return models.User{}, err
		}
	}

	user.Email = input.Email
	user.Username = input.Username
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.IsActive = input.Active()
	user.IsAdmin = input.IsAdmin
	user.CompanyID = input.CompanyID
	user.UpdatedAt = timestamp(s.now)

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Stringer("user_id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, caller models.User, id uuid.UUID) error {
	if err := RequireAdmin(caller); err != nil {
		return err
	}

	if _, err := s.userRepository.FindUserByID(ctx, id); err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// timestamp returns the current UTC time at the precision both supported
// databases store.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}
