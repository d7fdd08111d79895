package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/bcortri1/jobly/api"
	"github.com/bcortri1/jobly/internal/config"
	"github.com/bcortri1/jobly/internal/events"
	"github.com/bcortri1/jobly/pkg/models"
	"github.com/bcortri1/jobly/pkg/repository/mock"
)

const testSecret = "testsecret"

type testEnv struct {
	router *mux.Router
	mocks  *mock.Mocks
	events *events.Recorder
	admin  string
	user   string
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string { return &v }

// newTestEnv wires the router to in-memory repos holding three companies
// with one job each.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	m := mock.NewMocks()
	rec := &events.Recorder{}
	r, err := api.SetupRoutes(&config.Config{JWTSecret: testSecret}, "test", "now", api.Repos{
		Jobs:      m.JobRepo,
		Companies: m.CompanyRepo,
		Events:    rec,
	})
	if err != nil {
		t.Fatalf("SetupRoutes: %v", err)
	}

	m.CompanyRepo.Add(models.Company{Handle: "c1", Name: "C1", Description: "Desc1", NumEmployees: intPtr(1), LogoURL: strPtr("http://c1.img")})
	m.CompanyRepo.Add(models.Company{Handle: "c2", Name: "C2", Description: "Desc2", NumEmployees: intPtr(2)})
	m.CompanyRepo.Add(models.Company{Handle: "c3", Name: "C3", Description: "Desc3", NumEmployees: intPtr(3)})
	m.JobRepo.Add(models.Job{Title: "j1", Salary: intPtr(100), Equity: floatPtr(0.9), CompanyHandle: "c1"})
	m.JobRepo.Add(models.Job{Title: "j2", Salary: intPtr(200), Equity: floatPtr(0), CompanyHandle: "c2"})
	m.JobRepo.Add(models.Job{Title: "j3", CompanyHandle: "c3"})

	admin, err := api.CreateToken(testSecret, "admin", true, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	user, err := api.CreateToken(testSecret, "u1", false, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	return &testEnv{router: r, mocks: m, events: rec, admin: admin, user: user}
}

// do sends a request through the router and decodes the JSON response.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	out := map[string]any{}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil && err != io.EOF {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return res.StatusCode, out
}

func listTitles(t *testing.T, body map[string]any, key, field string) []string {
	t.Helper()
	items, ok := body[key].([]any)
	if !ok {
		t.Fatalf("expected %q list in %v", key, body)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.(map[string]any)[field].(string))
	}
	return out
}

func errorMessage(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	msg, _ := e["message"].(string)
	return msg
}
