package sqlbuild

import (
	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/pkg/models"
)

// PartialUpdate builds the SET list of an UPDATE statement.
//
//	data  = [{firstName Aliya} {age 32}]
//	names = {firstName: first_name}
//	=> `"first_name"=$1, "age"=$2`, [Aliya 32]
//
// Fields missing from names are used as the column name unchanged. Values are
// passed through untouched.
func PartialUpdate(data []models.Change, names map[string]string) (Clause, error) {
	if len(data) == 0 {
		return Clause{}, apperr.Invalid("No data")
	}

	var b builder
	for _, c := range data {
		col := c.Field
		if n, ok := names[c.Field]; ok && n != "" {
			col = n
		}
		b.emit(QuoteIdent(col) + "=" + b.bind(c.Value))
	}

	return b.clause(", "), nil
}
