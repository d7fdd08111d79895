package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bcortri1/jobly/api"
)

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.LoggingMiddleware(next)
	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "ok" {
		t.Fatalf("unexpected body: %q", string(b))
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated X-Request-ID")
	}

	// a client supplied id is kept
	req2 := httptest.NewRequest(http.MethodGet, "/log", nil)
	req2.Header.Set("X-Request-ID", "abc-123")
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req2)
	if got := w2.Result().Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := api.CORSMiddleware(next)

	// OPTIONS should return 204 and not call next
	reqOpt := httptest.NewRequest(http.MethodOptions, "/cors", nil)
	wOpt := httptest.NewRecorder()
	handler.ServeHTTP(wOpt, reqOpt)
	resOpt := wOpt.Result()
	defer resOpt.Body.Close()
	if resOpt.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS, got %d", resOpt.StatusCode)
	}
	if got := resOpt.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}

	// GET should pass through and set headers
	reqGet := httptest.NewRequest(http.MethodGet, "/cors", nil)
	wGet := httptest.NewRecorder()
	handler.ServeHTTP(wGet, reqGet)
	resGet := wGet.Result()
	defer resGet.Body.Close()
	if resGet.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", resGet.StatusCode)
	}
	if got := resGet.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
		t.Fatalf("expected Allow-Methods to include GET, got %q", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	// handler that panics
	pan := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := api.RecoveryMiddleware(pan)
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 from panic recovery, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Internal Server Error") {
		t.Fatalf("unexpected body for recovery: %s", string(b))
	}

	// normal handler should pass through
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler2 := api.RecoveryMiddleware(ok)
	w2 := httptest.NewRecorder()
	handler2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for normal path, got %d", w2.Result().StatusCode)
	}
}

func TestJWTAuthMiddlewareWithSecret(t *testing.T) {
	secret := "s3cr3t"
	var got *api.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = api.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := api.JWTAuthMiddlewareWithSecret(secret)(next)

	valid, err := api.CreateToken(secret, "admin", true, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	wrongKey, err := api.CreateToken("other", "admin", true, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	expired, err := api.CreateToken(secret, "admin", true, -time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	cases := []struct {
		name       string
		authHeader string
		wantClaims bool
	}{
		{name: "MissingHeader", authHeader: ""},
		{name: "EmptyBearer", authHeader: "Bearer "},
		{name: "NotBearer", authHeader: "Basic " + valid},
		{name: "BadToken", authHeader: "Bearer bad.token.here"},
		{name: "WrongKey", authHeader: "Bearer " + wrongKey},
		{name: "Expired", authHeader: "Bearer " + expired},
		{name: "Valid", authHeader: "Bearer " + valid, wantClaims: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got = nil
			req := httptest.NewRequest(http.MethodGet, "/jwt", nil)
			if c.authHeader != "" {
				req.Header.Set("Authorization", c.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Result().StatusCode != http.StatusOK {
				t.Fatalf("%s: anonymous requests must pass through, got %d", c.name, w.Result().StatusCode)
			}
			if (got != nil) != c.wantClaims {
				t.Fatalf("%s: claims = %+v, want present=%v", c.name, got, c.wantClaims)
			}
		})
	}

	if got == nil || got.Username != "admin" || !got.IsAdmin {
		t.Fatalf("unexpected claims from valid token: %+v", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	secret := "s3cr3t"
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := api.JWTAuthMiddlewareWithSecret(secret)(api.RequireAdmin(next))

	adminTok, _ := api.CreateToken(secret, "boss", true, time.Hour)
	userTok, _ := api.CreateToken(secret, "u1", false, time.Hour)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "Anonymous", wantStatus: http.StatusUnauthorized},
		{name: "NotAdmin", authHeader: "Bearer " + userTok, wantStatus: http.StatusUnauthorized},
		{name: "Admin", authHeader: "Bearer " + adminTok, wantStatus: http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if c.authHeader != "" {
				req.Header.Set("Authorization", c.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Result().StatusCode != c.wantStatus {
				t.Fatalf("%s: want %d got %d", c.name, c.wantStatus, w.Result().StatusCode)
			}
		})
	}
}
