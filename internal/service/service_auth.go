// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes stored by a UserRepository
// and issues and checks HS256-signed JWTs.
type authService struct {
	// userRepository is used to look up users by username and by token subject.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a user by username and password.
//
// Returns the authenticated user or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials if no such user exists or the password does not match.
//   - ErrInactiveUser if the account is deactivated.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", request.Username).Msg("login for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.ComparePassword(user.HashedPassword, request.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Warn().Stringer("id", user.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !user.IsActive {
		log.Warn().Stringer("id", user.ID).Msg("inactive user tried to log in")
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses tokenString and loads the user it was issued for.
//
// A token whose subject no longer exists is reported as
// ErrTokenIsExpiredOrInvalid; a deactivated account as ErrInactiveUser.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, fmt.Errorf("caller lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}
