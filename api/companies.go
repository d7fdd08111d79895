package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/internal/events"
	"github.com/bcortri1/jobly/internal/schema"
	"github.com/bcortri1/jobly/pkg/models"
	"github.com/bcortri1/jobly/pkg/repository"
)

type CompaniesHandler struct {
	companyRepo repository.CompanyRepo
	schemas     *schema.Loader
	publisher   events.Publisher
}

func NewCompaniesHandler(cr repository.CompanyRepo, s *schema.Loader, p events.Publisher) *CompaniesHandler {
	return &CompaniesHandler{companyRepo: cr, schemas: s, publisher: p}
}

// ListCompanies serves GET /companies with optional name, minEmployees and
// maxEmployees filters.
func (h *CompaniesHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := queryDocument(r.URL.Query(), []string{"minEmployees", "maxEmployees"}, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.schemas.Validate(ctx, schema.CompanySearch, doc); err != nil {
		writeError(w, err)
		return
	}

	var f models.FilterRequest
	if err := json.Unmarshal(doc, &f); err != nil {
		writeError(w, apperr.Invalid("invalid search: %v", err))
		return
	}

	companies, err := h.companyRepo.FilterCompanies(ctx, f)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{"companies": companies}, http.StatusOK)
}

// GetCompany returns the company with its jobs.
func (h *CompaniesHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyRepo.GetCompany(r.Context(), mux.Vars(r)["handle"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{"company": company}, http.StatusOK)
}

func (h *CompaniesHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.schemas.Validate(ctx, schema.CompanyNew, body); err != nil {
		writeError(w, err)
		return
	}

	var req models.CompanyNew
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apperr.Invalid("invalid company: %v", err))
		return
	}

	company, err := h.companyRepo.CreateCompany(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	publish(ctx, h.publisher, events.Event{Type: events.CompanyCreated, CompanyHandle: company.Handle})
	writeJSON(w, map[string]any{"company": company}, http.StatusCreated)
}

func (h *CompaniesHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handle := mux.Vars(r)["handle"]

	body, err := readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.schemas.Validate(ctx, schema.CompanyUpdate, body); err != nil {
		writeError(w, err)
		return
	}

	var req models.CompanyUpdate
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apperr.Invalid("invalid company update: %v", err))
		return
	}

	company, err := h.companyRepo.UpdateCompany(ctx, handle, req)
	if err != nil {
		writeError(w, err)
		return
	}

	publish(ctx, h.publisher, events.Event{Type: events.CompanyUpdated, CompanyHandle: handle})
	writeJSON(w, map[string]any{"company": company}, http.StatusOK)
}

func (h *CompaniesHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handle := mux.Vars(r)["handle"]

	if err := h.companyRepo.RemoveCompany(ctx, handle); err != nil {
		writeError(w, err)
		return
	}

	publish(ctx, h.publisher, events.Event{Type: events.CompanyDeleted, CompanyHandle: handle})
	writeJSON(w, map[string]any{"deleted": handle}, http.StatusOK)
}
