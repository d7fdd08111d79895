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

var jobColumns = []string{"id", "title", "salary::INTEGER AS salary", "equity::FLOAT AS equity", "company_handle"}

const jobReturning = "RETURNING id, title, salary::INTEGER, equity::FLOAT, company_handle"

// job fields are all written under their column names
var jobColumnNames = map[string]string{}

func (r *PGRepo) CreateJob(ctx context.Context, j models.JobNew) (*models.Job, error) {
	q, args, err := r.sb.Insert("jobs").
		Columns("title", "salary", "equity", "company_handle").
		Values(j.Title, j.Salary, j.Equity, j.CompanyHandle).
		Suffix(jobReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create job: %w", err)
	}

	job, err := scanJob(r.conn.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	return job, nil
}

// FindAllJobs returns every job ordered by title.
func (r *PGRepo) FindAllJobs(ctx context.Context) ([]models.Job, error) {
	q, args, err := r.sb.Select(jobColumns...).From("jobs").OrderBy("title").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find jobs: %w", err)
	}

	return r.queryJobs(ctx, q, args)
}

// FilterJobs returns the jobs matching f ordered by title. A request that
// produces no condition returns the same rows as FindAllJobs.
func (r *PGRepo) FilterJobs(ctx context.Context, f models.FilterRequest) ([]models.Job, error) {
	clause, err := sqlbuild.Filter(f)
	if err != nil {
		return nil, err
	}
	if clause.NoFilter() || len(clause.Args) == 0 {
		return r.FindAllJobs(ctx)
	}

	q, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		Where(clause.SQL, clause.Args...).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build filter jobs: %w", err)
	}

	return r.queryJobs(ctx, q, args)
}

func (r *PGRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	q, args, err := r.sb.Select(jobColumns...).From("jobs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get job: %w", err)
	}

	job, err := scanJob(r.conn.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("No job: %d", id)
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}

	return job, nil
}

// UpdateJob writes only the fields supplied in u and returns the stored job.
func (r *PGRepo) UpdateJob(ctx context.Context, id int64, u models.JobUpdate) (*models.Job, error) {
	set, err := sqlbuild.PartialUpdate(u.Changes(), jobColumnNames)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d %s`, set.SQL, len(set.Args)+1, jobReturning)
	args := append(set.Args, id)

	job, err := scanJob(r.conn.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("No job: %d", id)
		}
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}

	r.logger.Debug("job updated", "id", id, "fields", len(set.Args))
	return job, nil
}

func (r *PGRepo) RemoveJob(ctx context.Context, id int64) error {
	q, args, err := r.sb.Delete("jobs").Where(sq.Eq{"id": id}).Suffix("RETURNING id").ToSql()
	if err != nil {
		return fmt.Errorf("build remove job: %w", err)
	}

	var deleted int64
	if err := r.conn.QueryRow(ctx, q, args...).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("No job: %d", id)
		}
		return fmt.Errorf("remove job %d: %w", id, err)
	}

	return nil
}

func (r *PGRepo) queryJobs(ctx context.Context, q string, args []any) ([]models.Job, error) {
	rows, err := r.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}

	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
		return nil, err
	}
	return &j, nil
}
