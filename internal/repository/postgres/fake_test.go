package postgres_test

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// result is what the fake returns for one statement: rows to scan, or err.
type result struct {
	rows [][]any
	err  error
}

type call struct {
	sql  string
	args []any
}

// fakeConn is a db.Querier that records statements and answers them from a
// queue of results, one per call.
type fakeConn struct {
	calls   []call
	results []result
}

func (f *fakeConn) next(sql string, args []any) result {
	f.calls = append(f.calls, call{sql: sql, args: args})
	if len(f.results) == 0 {
		return result{}
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r
}

func (f *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r := f.next(sql, args)
	return pgconn.NewCommandTag("OK"), r.err
}

func (f *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r := f.next(sql, args)
	if r.err != nil {
		return nil, r.err
	}
	return &fakeRows{rows: r.rows, pos: -1}, nil
}

func (f *fakeConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r := f.next(sql, args)
	if r.err != nil {
		return fakeRow{err: r.err}
	}
	if len(r.rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: r.rows[0]}
}

func (f *fakeConn) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanValues(r.values, dest)
}

type fakeRows struct {
	rows   [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.pos+1 >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanValues(r.rows[r.pos], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

func scanValues(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i := range dest {
		if err := assign(dest[i], values[i]); err != nil {
			return fmt.Errorf("scan column %d: %w", i, err)
		}
	}
	return nil
}

// assign stores v into the pointer dest, allocating when dest points to a
// pointer (nullable column) and leaving it nil for a nil v.
func assign(dest, v any) error {
	dv := reflect.ValueOf(dest).Elem()
	if v == nil {
		dv.Set(reflect.Zero(dv.Type()))
		return nil
	}
	sv := reflect.ValueOf(v)
	target := dv.Type()
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	if !sv.CanConvert(target) {
		return fmt.Errorf("cannot assign %T to %s", v, dv.Type())
	}
	if dv.Kind() == reflect.Pointer {
		p := reflect.New(target)
		p.Elem().Set(sv.Convert(target))
		dv.Set(p)
		return nil
	}
	dv.Set(sv.Convert(target))
	return nil
}

func ptr[T any](v T) *T { return &v }
