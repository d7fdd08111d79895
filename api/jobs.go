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

type JobsHandler struct {
	jobRepo   repository.JobRepo
	schemas   *schema.Loader
	publisher events.Publisher
}

func NewJobsHandler(jr repository.JobRepo, s *schema.Loader, p events.Publisher) *JobsHandler {
	return &JobsHandler{jobRepo: jr, schemas: s, publisher: p}
}

// ListJobs serves GET /jobs with optional title, minSalary and hasEquity
// filters.
func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := queryDocument(r.URL.Query(), []string{"minSalary"}, []string{"hasEquity"})
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.schemas.Validate(ctx, schema.JobSearch, doc); err != nil {
		writeError(w, err)
		return
	}

	var f models.FilterRequest
	if err := json.Unmarshal(doc, &f); err != nil {
		writeError(w, apperr.Invalid("invalid search: %v", err))
		return
	}

	jobs, err := h.jobRepo.FilterJobs(ctx, f)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{"jobs": jobs}, http.StatusOK)
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]
	id, ok := parseID(raw)
	if !ok {
		writeError(w, apperr.NotFound("No job: %s", raw))
		return
	}

	job, err := h.jobRepo.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{"job": job}, http.StatusOK)
}

func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.schemas.Validate(ctx, schema.JobNew, body); err != nil {
		writeError(w, err)
		return
	}

	var req models.JobNew
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apperr.Invalid("invalid job: %v", err))
		return
	}

	job, err := h.jobRepo.CreateJob(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	publish(ctx, h.publisher, events.Event{Type: events.JobCreated, JobID: job.ID, CompanyHandle: job.CompanyHandle})
	writeJSON(w, map[string]any{"job": job}, http.StatusCreated)
}

func (h *JobsHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := mux.Vars(r)["id"]
	id, ok := parseID(raw)
	if !ok {
		writeError(w, apperr.Invalid("Invalid job id: %s", raw))
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.schemas.Validate(ctx, schema.JobUpdate, body); err != nil {
		writeError(w, err)
		return
	}

	var req models.JobUpdate
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, apperr.Invalid("invalid job update: %v", err))
		return
	}

	job, err := h.jobRepo.UpdateJob(ctx, id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	publish(ctx, h.publisher, events.Event{Type: events.JobUpdated, JobID: job.ID, CompanyHandle: job.CompanyHandle})
	writeJSON(w, map[string]any{"job": job}, http.StatusOK)
}

func (h *JobsHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := mux.Vars(r)["id"]
	id, ok := parseID(raw)
	if !ok {
		writeError(w, apperr.NotFound("No job: %s", raw))
		return
	}

	if err := h.jobRepo.RemoveJob(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	publish(ctx, h.publisher, events.Event{Type: events.JobDeleted, JobID: id})
	writeJSON(w, map[string]any{"deleted": id}, http.StatusOK)
}
