// Package sqlbuild assembles parameterized SQL fragments for partial updates
// and search filters. Placeholders use the PostgreSQL $N form and are always
// numbered 1..len(Args) in the order the values were bound.
package sqlbuild

import (
	"strconv"
	"strings"
)

// NoFilterMarker is the text of the Clause returned when no filter key was
// supplied. It is a signal for the caller, not SQL.
const NoFilterMarker = "No Filter"

// Clause is a SQL fragment and the values for its placeholders.
type Clause struct {
	SQL  string
	Args []any

	noFilter bool
}

// NoFilter reports whether the clause is the "no filtering requested"
// sentinel.
func (c Clause) NoFilter() bool { return c.noFilter }

func noFilter() Clause {
	return Clause{SQL: NoFilterMarker, Args: []any{}, noFilter: true}
}

// QuoteIdent quotes a PostgreSQL identifier: na"me -> "na""me".
func QuoteIdent(s string) string {
	if s == "" {
		return `""`
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// builder accumulates fragments and their bound values. The placeholder
// counter is len(args), so numbering stays contiguous.
type builder struct {
	parts []string
	args  []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *builder) emit(fragment string) {
	b.parts = append(b.parts, fragment)
}

func (b *builder) clause(sep string) Clause {
	args := b.args
	if args == nil {
		args = []any{}
	}
	return Clause{SQL: strings.Join(b.parts, sep), Args: args}
}
