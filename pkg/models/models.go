package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Company struct {
	Handle       string       `json:"handle" db:"handle"`
	Name         string       `json:"name" db:"name"`
	Description  string       `json:"description" db:"description"`
	NumEmployees *int         `json:"numEmployees" db:"num_employees"`
	LogoURL      *string      `json:"logoUrl" db:"logo_url"`
	Jobs         []CompanyJob `json:"jobs,omitempty"`
}

// CompanyJob is a job as listed under its company.
type CompanyJob struct {
	ID     int64    `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Salary *int     `json:"salary" db:"salary"`
	Equity *float64 `json:"equity" db:"equity"`
}

type Job struct {
	ID            int64    `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Salary        *int     `json:"salary" db:"salary"`
	Equity        *float64 `json:"equity" db:"equity"`
	CompanyHandle string   `json:"companyHandle" db:"company_handle"`
}

type CompanyNew struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

type JobNew struct {
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// CompanyUpdate is a partial update; only fields that were supplied are
// written. Field names are the application names, translated to columns by
// the repository.
type CompanyUpdate struct {
	Name         Field[string] `json:"name"`
	Description  Field[string] `json:"description"`
	NumEmployees Field[int]    `json:"numEmployees"`
	LogoURL      Field[string] `json:"logoUrl"`
}

func (u CompanyUpdate) Changes() []Change {
	var c []Change
	c = appendChange(c, "name", u.Name)
	c = appendChange(c, "description", u.Description)
	c = appendChange(c, "numEmployees", u.NumEmployees)
	c = appendChange(c, "logoUrl", u.LogoURL)
	return c
}

// JobUpdate is a partial update of a job. Changes are keyed by column name.
type JobUpdate struct {
	Title         Field[string]  `json:"title"`
	Salary        Field[int]     `json:"salary"`
	Equity        Field[float64] `json:"equity"`
	CompanyHandle Field[string]  `json:"companyHandle"`
}

func (u JobUpdate) Changes() []Change {
	var c []Change
	c = appendChange(c, "title", u.Title)
	c = appendChange(c, "salary", u.Salary)
	c = appendChange(c, "equity", u.Equity)
	c = appendChange(c, "company_handle", u.CompanyHandle)
	return c
}

// FilterRequest carries the recognized search keys for both companies
// (name, minEmployees, maxEmployees) and jobs (title, minSalary, hasEquity).
// Unknown keys are dropped when decoding.
type FilterRequest struct {
	Name         Field[string] `json:"name"`
	MinEmployees Field[int]    `json:"minEmployees"`
	MaxEmployees Field[int]    `json:"maxEmployees"`
	Title        Field[string] `json:"title"`
	MinSalary    Field[int]    `json:"minSalary"`
	HasEquity    Field[bool]   `json:"hasEquity"`
}

// Any reports whether at least one recognized key was supplied.
func (f FilterRequest) Any() bool {
	return f.Name.Set || f.MinEmployees.Set || f.MaxEmployees.Set ||
		f.Title.Set || f.MinSalary.Set || f.HasEquity.Set
}
