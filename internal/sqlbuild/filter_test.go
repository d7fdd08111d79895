package sqlbuild_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/internal/sqlbuild"
	"github.com/bcortri1/jobly/pkg/models"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		req      models.FilterRequest
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "name and employee range",
			req: models.FilterRequest{
				Name:         models.Some("in"),
				MinEmployees: models.Some(100),
				MaxEmployees: models.Some(400),
			},
			wantSQL:  `"name" ILIKE ($1) AND "num_employees" BETWEEN $2 AND $3`,
			wantArgs: []any{"%in%", 100, 400},
		},
		{
			name:     "min employees only",
			req:      models.FilterRequest{MinEmployees: models.Some(5)},
			wantSQL:  `"num_employees">=$1`,
			wantArgs: []any{5},
		},
		{
			name:     "max employees only",
			req:      models.FilterRequest{Name: models.Some("c"), MaxEmployees: models.Some(5)},
			wantSQL:  `"name" ILIKE ($1) AND "num_employees"<=$2`,
			wantArgs: []any{"%c%", 5},
		},
		{
			name:     "has equity true",
			req:      models.FilterRequest{HasEquity: models.Some(true)},
			wantSQL:  `"equity">$1`,
			wantArgs: []any{"0"},
		},
		{
			name:     "has equity false",
			req:      models.FilterRequest{HasEquity: models.Some(false)},
			wantSQL:  `"equity">=$1`,
			wantArgs: []any{"0"},
		},
		{
			name: "all job keys",
			req: models.FilterRequest{
				Title:     models.Some("j"),
				MinSalary: models.Some(200),
				HasEquity: models.Some(true),
			},
			wantSQL:  `"title" ILIKE ($1) AND "salary">=$2 AND "equity">$3`,
			wantArgs: []any{"%j%", 200, "0"},
		},
		{
			name: "company and job keys mixed",
			req: models.FilterRequest{
				Name:      models.Some("acme"),
				MinSalary: models.Some(1),
			},
			wantSQL:  `"name" ILIKE ($1) AND "salary">=$2`,
			wantArgs: []any{"%acme%", 1},
		},
		{
			name: "all six keys",
			req: models.FilterRequest{
				Name:         models.Some("n"),
				MinEmployees: models.Some(1),
				MaxEmployees: models.Some(2),
				Title:        models.Some("t"),
				MinSalary:    models.Some(3),
				HasEquity:    models.Some(false),
			},
			wantSQL:  `"name" ILIKE ($1) AND "num_employees" BETWEEN $2 AND $3 AND "title" ILIKE ($4) AND "salary">=$5 AND "equity">=$6`,
			wantArgs: []any{"%n%", 1, 2, "%t%", 3, "0"},
		},
		{
			name:     "null equity yields empty clause",
			req:      models.FilterRequest{HasEquity: models.Null[bool]()},
			wantSQL:  "",
			wantArgs: []any{},
		},
		{
			name:     "null max falls back to min only",
			req:      models.FilterRequest{MinEmployees: models.Some(10), MaxEmployees: models.Null[int]()},
			wantSQL:  `"num_employees">=$1`,
			wantArgs: []any{10},
		},
		{
			name:     "null min falls back to max only",
			req:      models.FilterRequest{MinEmployees: models.Null[int](), MaxEmployees: models.Some(5)},
			wantSQL:  `"num_employees"<=$1`,
			wantArgs: []any{5},
		},
		{
			name:     "null name yields empty clause",
			req:      models.FilterRequest{Name: models.Null[string]()},
			wantSQL:  "",
			wantArgs: []any{},
		},
		{
			name:     "null keys skipped between set keys",
			req:      models.FilterRequest{Title: models.Some("j"), MinSalary: models.Null[int](), HasEquity: models.Some(true)},
			wantSQL:  `"title" ILIKE ($1) AND "equity">$2`,
			wantArgs: []any{"%j%", "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sqlbuild.Filter(tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.NoFilter() {
				t.Fatalf("did not expect the no-filter sentinel")
			}
			if got.SQL != tt.wantSQL {
				t.Fatalf("SQL = %q, want %q", got.SQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(got.Args, tt.wantArgs) {
				t.Fatalf("Args = %#v, want %#v", got.Args, tt.wantArgs)
			}
			assertPlaceholders(t, got.SQL, len(got.Args))
		})
	}
}

func TestFilter_NoFilter(t *testing.T) {
	var unknownOnly models.FilterRequest
	if err := json.Unmarshal([]byte(`{"color":"blue"}`), &unknownOnly); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, req := range []models.FilterRequest{{}, unknownOnly} {
		got, err := sqlbuild.Filter(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.NoFilter() {
			t.Fatalf("expected the no-filter sentinel, got %+v", got)
		}
		if got.SQL != sqlbuild.NoFilterMarker {
			t.Fatalf("sentinel SQL = %q", got.SQL)
		}
		if len(got.Args) != 0 {
			t.Fatalf("sentinel must carry no args, got %#v", got.Args)
		}
	}
}

func TestFilter_MinNotBelowMax(t *testing.T) {
	cases := []struct{ min, max int }{
		{400, 300},
		{300, 300},
	}
	for _, c := range cases {
		_, err := sqlbuild.Filter(models.FilterRequest{
			MinEmployees: models.Some(c.min),
			MaxEmployees: models.Some(c.max),
		})
		if !errors.Is(err, apperr.ErrInvalidInput) {
			t.Fatalf("min=%d max=%d: expected invalid input, got %v", c.min, c.max, err)
		}
	}
}

func TestFilter_FromJSON(t *testing.T) {
	var req models.FilterRequest
	body := `{"hasEquity":true,"title":"dev","minSalary":50000}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := sqlbuild.Filter(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// key order in the body does not matter, rule order does
	want := `"title" ILIKE ($1) AND "salary">=$2 AND "equity">$3`
	if got.SQL != want {
		t.Fatalf("SQL = %q, want %q", got.SQL, want)
	}
}
