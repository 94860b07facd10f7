// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()

	token, err := GenerateJWTToken(issuer, userID, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   uuid.UUID
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", uuid.New(), time.Hour, "key"},
		{"zero duration", "iss", uuid.New(), 0, "key"},
		{"empty key", "iss", uuid.New(), time.Hour, ""},
		{"nil user", "iss", uuid.Nil, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateJWTToken("iss", userID, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("iss", uuid.New(), time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expiredClaims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("key"))

	badSubjectClaims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, badSubjectClaims).SignedString([]byte("key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired, "key", "iss"},
		{"non uuid subject", badSubject, "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer abc", "abc", nil},
		{"  Bearer   abc  ", "abc", nil},
		{"Basic abc", "", ErrInvalidAuthorizationHeader},
		{"Bearer", "", ErrInvalidAuthorizationHeader},
		{"", "", ErrInvalidAuthorizationHeader},
		{"Bearer a b", "", ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("header %q: expected error %v, got %v", tt.header, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("header %q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}
