// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/models"
)

const (
	usersTable     = "users"
	companiesTable = "companies"
)

var userColumns = []string{
	"id",
	"email",
	"username",
	"first_name",
	"last_name",
	"hashed_password",
	"is_active",
	"is_admin",
	"company_id",
	"created_at",
	"updated_at",
}

var companyColumns = []string{
	"id",
	"name",
	"description",
	"mode",
	"rating",
	"created_at",
	"updated_at",
}

// queryBuilder renders the SQL statements used by the repositories for one
// dialect: placeholders are $n on PostgreSQL and ? on SQLite, and name
// matching uses ILIKE where the dialect has it.
type queryBuilder struct {
	sb          sq.StatementBuilderType
	insensitive bool
}

func newQueryBuilder(driver string) *queryBuilder {
	if driver == config.DriverPostgres {
		return &queryBuilder{
			sb:          sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			insensitive: true,
		}
	}

	// SQLite LIKE is already case-insensitive for ASCII.
	return &queryBuilder{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (q *queryBuilder) contains(column, value string) sq.Sqlizer {
	pattern := "%" + value + "%"
	if q.insensitive {
		return sq.ILike{column: pattern}
	}
	return sq.Like{column: pattern}
}

func paginate(b sq.SelectBuilder, page models.Page) sq.SelectBuilder {
	return b.OrderBy("created_at", "id").
		Limit(page.Limit()).
		Offset(page.Offset())
}

func toSQL(s sq.Sqlizer) (string, []any, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func (q *queryBuilder) insertUser(user models.User) (string, []any, error) {
	return toSQL(q.sb.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Email,
			user.Username,
			user.FirstName,
			user.LastName,
			user.HashedPassword,
			user.IsActive,
			user.IsAdmin,
			user.CompanyID,
			user.CreatedAt,
			user.UpdatedAt,
		))
}

func (q *queryBuilder) selectUserBy(column string, value any) (string, []any, error) {
	return toSQL(q.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}))
}

func (q *queryBuilder) selectActiveUsers(query models.UserQuery) (string, []any, error) {
	b := q.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"is_active": true})

	if query.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": *query.CompanyID})
	}

	return toSQL(paginate(b, query.Page))
}

func (q *queryBuilder) updateUser(user models.User) (string, []any, error) {
	return toSQL(q.sb.Update(usersTable).
		SetMap(map[string]any{
			"email":           user.Email,
			"username":        user.Username,
			"first_name":      user.FirstName,
			"last_name":       user.LastName,
			"hashed_password": user.HashedPassword,
			"is_active":       user.IsActive,
			"is_admin":        user.IsAdmin,
			"company_id":      user.CompanyID,
			"updated_at":      user.UpdatedAt,
		}).
		Where(sq.Eq{"id": user.ID}))
}

func (q *queryBuilder) deleteUser(id uuid.UUID) (string, []any, error) {
	return toSQL(q.sb.Delete(usersTable).Where(sq.Eq{"id": id}))
}

// ── companies ─────────────────────────────────────────────────────────────────

func (q *queryBuilder) insertCompany(company models.Company) (string, []any, error) {
	return toSQL(q.sb.Insert(companiesTable).
		Columns(companyColumns...).
		Values(
			company.ID,
			company.Name,
			company.Description,
			company.Mode,
			company.Rating,
			company.CreatedAt,
			company.UpdatedAt,
		))
}

func (q *queryBuilder) selectCompanyByID(id uuid.UUID) (string, []any, error) {
	return toSQL(q.sb.Select(companyColumns...).
		From(companiesTable).
		Where(sq.Eq{"id": id}))
}

func (q *queryBuilder) selectCompanies(query models.CompanyQuery) (string, []any, error) {
	b := q.sb.Select(companyColumns...).From(companiesTable)

	if query.Name != "" {
		b = b.Where(q.contains("name", query.Name))
	}
	if query.Mode != "" {
		b = b.Where(sq.Eq{"mode": query.Mode})
	}

	return toSQL(paginate(b, query.Page))
}

func (q *queryBuilder) updateCompany(company models.Company) (string, []any, error) {
	return toSQL(q.sb.Update(companiesTable).
		SetMap(map[string]any{
			"name":        company.Name,
			"description": company.Description,
			"mode":        company.Mode,
			"rating":      company.Rating,
			"updated_at":  company.UpdatedAt,
		}).
		Where(sq.Eq{"id": company.ID}))
}

func (q *queryBuilder) deleteCompany(id uuid.UUID) (string, []any, error) {
	return toSQL(q.sb.Delete(companiesTable).Where(sq.Eq{"id": id}))
}
