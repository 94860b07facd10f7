// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newPostgresDB(db, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testUser() models.User {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.User{
		ID:             uuid.New(),
		Email:          "john@example.com",
		Username:       "john",
		FirstName:      "John",
		LastName:       "Smith",
		HashedPassword: "hash",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		var companyID any
		if u.CompanyID != nil {
			companyID = u.CompanyID.String()
		}
		rows.AddRow(u.ID.String(), u.Email, u.Username, u.FirstName, u.LastName, u.HashedPassword,
			u.IsActive, u.IsAdmin, companyID, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.Email, user.Username, user.FirstName, user.LastName, user.HashedPassword,
			user.IsActive, user.IsAdmin, nil, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != user {
		t.Fatalf("unexpected user: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateUser_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "duplicate username", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrUserAlreadyExists},
		{name: "unknown company", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrUnknownCompanyReference},
		{name: "other failure", dbErr: errors.New("connection reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), testUser())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser()
	companyID := uuid.New()
	user.CompanyID = &companyID

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	got, err := repo.FindUserByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID || got.Username != user.Username {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.CompanyID == nil || *got.CompanyID != companyID {
		t.Fatalf("expected company id %s, got %v", companyID, got.CompanyID)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnRows(userRows())

	_, err := repo.FindUserByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("john").
		WillReturnRows(userRows(user))

	got, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HashedPassword != "hash" || got.CompanyID != nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("not-a-uuid"))

	_, err := repo.FindUserByUsername(context.Background(), "john")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestListActiveUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	first, second := testUser(), testUser()
	second.Username = "jane"

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE is_active = $1 ORDER BY created_at, id LIMIT 10 OFFSET 10")).
		WithArgs(true).
		WillReturnRows(userRows(first, second))

	users, err := repo.ListActiveUsers(context.Background(), models.UserQuery{Page: models.Page{Number: 2, Size: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users[1].Username != "jane" {
		t.Fatalf("unexpected users: %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListActiveUsers_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnRows(userRows())

	users, err := repo.ListActiveUsers(context.Background(), models.UserQuery{Page: models.Page{Number: 1, Size: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
}

func TestListActiveUsers_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(errors.New("boom"))

		_, err := repo.ListActiveUsers(context.Background(), models.UserQuery{Page: models.Page{Number: 1, Size: 10}})
		if !errors.Is(err, ErrExecutingQuery) {
			t.Fatalf("expected ErrExecutingQuery, got %v", err)
		}
	})

	t.Run("rows error", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		rows := userRows(testUser()).RowError(0, errors.New("row failure"))
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnRows(rows)

		_, err := repo.ListActiveUsers(context.Background(), models.UserQuery{Page: models.Page{Number: 1, Size: 10}})
		if !errors.Is(err, ErrScanningRows) {
			t.Fatalf("expected ErrScanningRows, got %v", err)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "no rows affected", result: sqlmock.NewResult(0, 0), wantErr: ErrUserNotFound},
		{name: "duplicate email", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrUserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			user := testUser()
			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET"))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			got, err := repo.UpdateUser(context.Background(), user)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != user.ID {
				t.Fatalf("unexpected user: %+v", got)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: ErrUserNotFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("unsupported")), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			id := uuid.New()
			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).WithArgs(id)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteUser(context.Background(), id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
