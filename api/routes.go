package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bcortri1/jobly/internal/config"
	"github.com/bcortri1/jobly/internal/events"
	"github.com/bcortri1/jobly/internal/schema"
	"github.com/bcortri1/jobly/pkg/repository"
)

// Repos bundles what the handlers read and write.
type Repos struct {
	Jobs      repository.JobRepo
	Companies repository.CompanyRepo
	// Events may be nil, in which case nothing is published.
	Events events.Publisher
}

func SetupRoutes(cfg *config.Config, version, buildTime string, repos Repos) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	schemas, err := schema.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}
	publisher := repos.Events
	if publisher == nil {
		publisher = events.Nop{}
	}

	// Create handlers
	systemHandler := &SystemHandler{}
	jobsHandler := NewJobsHandler(repos.Jobs, schemas, publisher)
	companiesHandler := NewCompaniesHandler(repos.Companies, schemas, publisher)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Jobs endpoints
	r.HandleFunc("/jobs", jobsHandler.ListJobs).Methods("GET")
	r.HandleFunc("/jobs/{id}", jobsHandler.GetJob).Methods("GET")
	r.Handle("/jobs", admin(jobsHandler.CreateJob)).Methods("POST")
	r.Handle("/jobs/{id}", admin(jobsHandler.UpdateJob)).Methods("PATCH")
	r.Handle("/jobs/{id}", admin(jobsHandler.DeleteJob)).Methods("DELETE")

	// Companies endpoints
	r.HandleFunc("/companies", companiesHandler.ListCompanies).Methods("GET")
	r.HandleFunc("/companies/{handle}", companiesHandler.GetCompany).Methods("GET")
	r.Handle("/companies", admin(companiesHandler.CreateCompany)).Methods("POST")
	r.Handle("/companies/{handle}", admin(companiesHandler.UpdateCompany)).Methods("PATCH")
	r.Handle("/companies/{handle}", admin(companiesHandler.DeleteCompany)).Methods("DELETE")

	return r, nil
}

func admin(h http.HandlerFunc) http.Handler {
	return RequireAdmin(h)
}
