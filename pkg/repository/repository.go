package repository

import (
	"context"

	"github.com/bcortri1/jobly/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Lookups, updates and deletes of a missing row fail with an error matching
// apperr.ErrNotFound; bad input fails with one matching apperr.ErrInvalidInput.

type JobRepo interface {
	CreateJob(ctx context.Context, j models.JobNew) (*models.Job, error)
	FindAllJobs(ctx context.Context) ([]models.Job, error)
	FilterJobs(ctx context.Context, f models.FilterRequest) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	UpdateJob(ctx context.Context, id int64, u models.JobUpdate) (*models.Job, error)
	RemoveJob(ctx context.Context, id int64) error
}

type CompanyRepo interface {
	CreateCompany(ctx context.Context, c models.CompanyNew) (*models.Company, error)
	FindAllCompanies(ctx context.Context) ([]models.Company, error)
	FilterCompanies(ctx context.Context, f models.FilterRequest) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.Company, error)
	UpdateCompany(ctx context.Context, handle string, u models.CompanyUpdate) (*models.Company, error)
	RemoveCompany(ctx context.Context, handle string) error
}
