// Package schema validates request bodies and search queries against the
// JSON schemas embedded under schemas/.
package schema

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/bcortri1/jobly/internal/apperr"
)

// Schema names, one per embedded file.
const (
	JobNew        = "jobNew"
	JobUpdate     = "jobUpdate"
	JobSearch     = "jobSearch"
	CompanyNew    = "companyNew"
	CompanyUpdate = "companyUpdate"
	CompanySearch = "companySearch"
)

//go:embed schemas/*.json
var embedded embed.FS

// Loader holds the compiled schemas keyed by name.
type Loader struct {
	cache map[string]*jsonschema.Schema
}

// NewLoader compiles the embedded schemas.
func NewLoader() (*Loader, error) {
	return NewLoaderFS(embedded, "schemas")
}

// NewLoaderFS compiles every *.json file in dir of fsys. The file name without
// extension is the schema name.
func NewLoaderFS(fsys fs.FS, dir string) (*Loader, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}

	l := &Loader{cache: make(map[string]*jsonschema.Schema)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", e.Name(), err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", e.Name(), err)
		}
		l.cache[strings.TrimSuffix(e.Name(), ".json")] = rs
	}

	return l, nil
}

// GetSchema returns a compiled schema by name.
func (l *Loader) GetSchema(name string) (*jsonschema.Schema, bool) {
	s, ok := l.cache[name]
	return s, ok
}

// Validate checks data against the named schema. A document that does not
// match yields an *apperr.ValidationError listing every problem.
func (l *Loader) Validate(ctx context.Context, name string, data []byte) error {
	s, ok := l.GetSchema(name)
	if !ok {
		return fmt.Errorf("no schema named %s", name)
	}

	verrs, err := s.ValidateBytes(ctx, data)
	if err != nil {
		return apperr.Invalid("invalid json: %v", err)
	}
	if len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, v := range verrs {
			msgs = append(msgs, v.Error())
		}
		return apperr.Invalid("%s", strings.Join(msgs, "; "))
	}

	return nil
}
