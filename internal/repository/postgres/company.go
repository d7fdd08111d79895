package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/internal/sqlbuild"
	"github.com/bcortri1/jobly/pkg/models"
)

var companyColumns = []string{"handle", "name", "description", "num_employees", "logo_url"}

const companyReturning = "RETURNING handle, name, description, num_employees, logo_url"

var companyColumnNames = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// CreateCompany inserts c, failing with a validation error when the handle
// is already taken.
func (r *PGRepo) CreateCompany(ctx context.Context, c models.CompanyNew) (*models.Company, error) {
	q, args, err := r.sb.Select("handle").From("companies").Where(sq.Eq{"handle": c.Handle}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build duplicate check: %w", err)
	}
	var existing string
	err = r.conn.QueryRow(ctx, q, args...).Scan(&existing)
	switch {
	case err == nil:
		return nil, apperr.Invalid("Duplicate company: %s", c.Handle)
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("duplicate check: %w", err)
	}

	q, args, err = r.sb.Insert("companies").
		Columns(companyColumns...).
		Values(c.Handle, c.Name, c.Description, c.NumEmployees, c.LogoURL).
		Suffix(companyReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create company: %w", err)
	}

	company, err := scanCompany(r.conn.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	return company, nil
}

// FindAllCompanies returns every company ordered by name.
func (r *PGRepo) FindAllCompanies(ctx context.Context) ([]models.Company, error) {
	q, args, err := r.sb.Select(companyColumns...).From("companies").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find companies: %w", err)
	}

	return r.queryCompanies(ctx, q, args)
}

func (r *PGRepo) FilterCompanies(ctx context.Context, f models.FilterRequest) ([]models.Company, error) {
	clause, err := sqlbuild.Filter(f)
	if err != nil {
		return nil, err
	}
	if clause.NoFilter() || len(clause.Args) == 0 {
		return r.FindAllCompanies(ctx)
	}

	q, args, err := r.sb.Select(companyColumns...).
		From("companies").
		Where(clause.SQL, clause.Args...).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build filter companies: %w", err)
	}

	return r.queryCompanies(ctx, q, args)
}

// GetCompany returns the company and its jobs.
func (r *PGRepo) GetCompany(ctx context.Context, handle string) (*models.Company, error) {
	q, args, err := r.sb.Select(companyColumns...).From("companies").Where(sq.Eq{"handle": handle}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get company: %w", err)
	}

	company, err := scanCompany(r.conn.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("No company: %s", handle)
		}
		return nil, fmt.Errorf("get company %s: %w", handle, err)
	}

	q, args, err = r.sb.Select("id", "title", "salary::INTEGER AS salary", "equity::FLOAT AS equity").
		From("jobs").
		Where(sq.Eq{"company_handle": handle}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company jobs: %w", err)
	}

	rows, err := r.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query company jobs: %w", err)
	}
	defer rows.Close()

	company.Jobs = make([]models.CompanyJob, 0)
	for rows.Next() {
		var j models.CompanyJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity); err != nil {
			return nil, fmt.Errorf("scan company job: %w", err)
		}
		company.Jobs = append(company.Jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("company jobs: %w", err)
	}

	return company, nil
}

func (r *PGRepo) UpdateCompany(ctx context.Context, handle string, u models.CompanyUpdate) (*models.Company, error) {
	set, err := sqlbuild.PartialUpdate(u.Changes(), companyColumnNames)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d %s`, set.SQL, len(set.Args)+1, companyReturning)
	args := append(set.Args, handle)

	company, err := scanCompany(r.conn.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("No company: %s", handle)
		}
		return nil, fmt.Errorf("update company %s: %w", handle, err)
	}

	return company, nil
}

func (r *PGRepo) RemoveCompany(ctx context.Context, handle string) error {
	q, args, err := r.sb.Delete("companies").Where(sq.Eq{"handle": handle}).Suffix("RETURNING handle").ToSql()
	if err != nil {
		return fmt.Errorf("build remove company: %w", err)
	}

	var deleted string
	if err := r.conn.QueryRow(ctx, q, args...).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("No company: %s", handle)
		}
		return fmt.Errorf("remove company %s: %w", handle, err)
	}

	r.logger.Debug("company removed", "handle", handle)
	return nil
}

func (r *PGRepo) queryCompanies(ctx context.Context, q string, args []any) ([]models.Company, error) {
	rows, err := r.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *c)
	}

	return companies, rows.Err()
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
		return nil, err
	}
	return &c, nil
}
