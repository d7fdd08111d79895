package mock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/internal/sqlbuild"
	"github.com/bcortri1/jobly/pkg/models"
	"github.com/bcortri1/jobly/pkg/repository"
)

var _ repository.JobRepo = (*mockJobRepo)(nil)
var _ repository.CompanyRepo = (*mockCompanyRepo)(nil)

// Test helpers and mocks
type Mocks struct {
	JobRepo     *mockJobRepo
	CompanyRepo *mockCompanyRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		JobRepo:     &mockJobRepo{jobs: map[int64]models.Job{}},
		CompanyRepo: &mockCompanyRepo{companies: map[string]models.Company{}},
	}
}

// mockJobRepo keeps jobs in memory. Filters go through sqlbuild.Filter first
// so validation errors match the real repository.
type mockJobRepo struct {
	mu     sync.Mutex
	jobs   map[int64]models.Job
	nextID int64

	LastFilter *models.FilterRequest
	Err        error
}

func (m *mockJobRepo) Add(j models.Job) models.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j.ID == 0 {
		m.nextID++
		j.ID = m.nextID
	} else if j.ID > m.nextID {
		m.nextID = j.ID
	}
	m.jobs[j.ID] = j
	return j
}

func (m *mockJobRepo) CreateJob(ctx context.Context, j models.JobNew) (*models.Job, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	job := m.Add(models.Job{Title: j.Title, Salary: j.Salary, Equity: j.Equity, CompanyHandle: j.CompanyHandle})
	return &job, nil
}

func (m *mockJobRepo) FindAllJobs(ctx context.Context) ([]models.Job, error) {
	return m.FilterJobs(ctx, models.FilterRequest{})
}

func (m *mockJobRepo) FilterJobs(ctx context.Context, f models.FilterRequest) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFilter = &f
	if m.Err != nil {
		return nil, m.Err
	}
	if _, err := sqlbuild.Filter(f); err != nil {
		return nil, err
	}

	out := make([]models.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		if f.Title.Valid() && !containsFold(j.Title, f.Title.Value) {
			continue
		}
		if f.MinSalary.Valid() && (j.Salary == nil || *j.Salary < f.MinSalary.Value) {
			continue
		}
		if f.HasEquity.Valid() {
			if j.Equity == nil || (f.HasEquity.Value && *j.Equity <= 0) {
				continue
			}
		}
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Title < out[b].Title })
	return out, nil
}

func (m *mockJobRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	j, ok := m.jobs[id]
	if !ok {
		return nil, apperr.NotFound("No job: %d", id)
	}
	return &j, nil
}

func (m *mockJobRepo) UpdateJob(ctx context.Context, id int64, u models.JobUpdate) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if len(u.Changes()) == 0 {
		return nil, apperr.Invalid("No data")
	}
	j, ok := m.jobs[id]
	if !ok {
		return nil, apperr.NotFound("No job: %d", id)
	}
	if u.Title.Set {
		j.Title = u.Title.Value
	}
	if u.Salary.Set {
		j.Salary = fieldPtr(u.Salary)
	}
	if u.Equity.Set {
		j.Equity = fieldPtr(u.Equity)
	}
	if u.CompanyHandle.Set {
		j.CompanyHandle = u.CompanyHandle.Value
	}
	m.jobs[id] = j
	return &j, nil
}

func (m *mockJobRepo) RemoveJob(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.jobs[id]; !ok {
		return apperr.NotFound("No job: %d", id)
	}
	delete(m.jobs, id)
	return nil
}

type mockCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]models.Company

	LastFilter *models.FilterRequest
	Err        error
}

func (m *mockCompanyRepo) Add(c models.Company) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[c.Handle] = c
}

func (m *mockCompanyRepo) CreateCompany(ctx context.Context, c models.CompanyNew) (*models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.companies[c.Handle]; ok {
		return nil, apperr.Invalid("Duplicate company: %s", c.Handle)
	}
	company := models.Company{
		Handle:       c.Handle,
		Name:         c.Name,
		Description:  c.Description,
		NumEmployees: c.NumEmployees,
		LogoURL:      c.LogoURL,
	}
	m.companies[c.Handle] = company
	return &company, nil
}

func (m *mockCompanyRepo) FindAllCompanies(ctx context.Context) ([]models.Company, error) {
	return m.FilterCompanies(ctx, models.FilterRequest{})
}

func (m *mockCompanyRepo) FilterCompanies(ctx context.Context, f models.FilterRequest) ([]models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFilter = &f
	if m.Err != nil {
		return nil, m.Err
	}
	if _, err := sqlbuild.Filter(f); err != nil {
		return nil, err
	}

	out := make([]models.Company, 0, len(m.companies))
	for _, c := range m.companies {
		if f.Name.Valid() && !containsFold(c.Name, f.Name.Value) {
			continue
		}
		if f.MinEmployees.Valid() && (c.NumEmployees == nil || *c.NumEmployees < f.MinEmployees.Value) {
			continue
		}
		if f.MaxEmployees.Valid() && (c.NumEmployees == nil || *c.NumEmployees > f.MaxEmployees.Value) {
			continue
		}
		c.Jobs = nil
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (m *mockCompanyRepo) GetCompany(ctx context.Context, handle string) (*models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.companies[handle]
	if !ok {
		return nil, apperr.NotFound("No company: %s", handle)
	}
	if c.Jobs == nil {
		c.Jobs = []models.CompanyJob{}
	}
	return &c, nil
}

func (m *mockCompanyRepo) UpdateCompany(ctx context.Context, handle string, u models.CompanyUpdate) (*models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if len(u.Changes()) == 0 {
		return nil, apperr.Invalid("No data")
	}
	c, ok := m.companies[handle]
	if !ok {
		return nil, apperr.NotFound("No company: %s", handle)
	}
	if u.Name.Set {
		c.Name = u.Name.Value
	}
	if u.Description.Set {
		c.Description = u.Description.Value
	}
	if u.NumEmployees.Set {
		c.NumEmployees = fieldPtr(u.NumEmployees)
	}
	if u.LogoURL.Set {
		c.LogoURL = fieldPtr(u.LogoURL)
	}
	m.companies[handle] = c
	return &c, nil
}

func (m *mockCompanyRepo) RemoveCompany(ctx context.Context, handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.companies[handle]; !ok {
		return apperr.NotFound("No company: %s", handle)
	}
	delete(m.companies, handle)
	return nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func fieldPtr[T any](f models.Field[T]) *T {
	if !f.Valid() {
		return nil
	}
	v := f.Value
	return &v
}
