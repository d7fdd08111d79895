package sqlbuild

import (
	"github.com/bcortri1/jobly/internal/apperr"
	"github.com/bcortri1/jobly/pkg/models"
)

// equityFloor is bound as text, the numeric column casts it.
const equityFloor = "0"

// filterRule handles one recognized search key (or the employee range pair):
// it validates its input and emits at most one fragment.
type filterRule func(f models.FilterRequest, b *builder) error

// filterRules run in this order; the order fixes placeholder numbering.
var filterRules = []filterRule{
	nameRule,
	employeesRule,
	titleRule,
	minSalaryRule,
	hasEquityRule,
}

// Filter builds a WHERE fragment (without the keyword) from f.
//
// With no recognized key supplied it returns the NoFilter sentinel. When keys
// were supplied but none produced a condition (hasEquity: null)
// the result is an empty SQL string with no args, which is not the sentinel.
func Filter(f models.FilterRequest) (Clause, error) {
	if !f.Any() {
		return noFilter(), nil
	}

	var b builder
	for _, rule := range filterRules {
		if err := rule(f, &b); err != nil {
			return Clause{}, err
		}
	}

	return b.clause(" AND "), nil
}

func nameRule(f models.FilterRequest, b *builder) error {
	if f.Name.Valid() {
		b.emit(`"name" ILIKE (` + b.bind("%"+f.Name.Value+"%") + `)`)
	}
	return nil
}

func employeesRule(f models.FilterRequest, b *builder) error {
	lo, hi := f.MinEmployees, f.MaxEmployees
	switch {
	case lo.Valid() && hi.Valid():
		if lo.Value >= hi.Value {
			return apperr.Invalid("Min cannot be greater than Max")
		}
		b.emit(`"num_employees" BETWEEN ` + b.bind(lo.Value) + ` AND ` + b.bind(hi.Value))
	case lo.Valid():
		b.emit(`"num_employees">=` + b.bind(lo.Value))
	case hi.Valid():
		b.emit(`"num_employees"<=` + b.bind(hi.Value))
	}
	return nil
}

func titleRule(f models.FilterRequest, b *builder) error {
	if f.Title.Valid() {
		b.emit(`"title" ILIKE (` + b.bind("%"+f.Title.Value+"%") + `)`)
	}
	return nil
}

func minSalaryRule(f models.FilterRequest, b *builder) error {
	if f.MinSalary.Valid() {
		b.emit(`"salary">=` + b.bind(f.MinSalary.Value))
	}
	return nil
}

// hasEquityRule: true keeps jobs with equity above zero. false emits
// equity >= 0, which only drops rows whose equity is NULL.
func hasEquityRule(f models.FilterRequest, b *builder) error {
	if !f.HasEquity.Valid() {
		return nil
	}
	if f.HasEquity.Value {
		b.emit(`"equity">` + b.bind(equityFloor))
	} else {
		b.emit(`"equity">=` + b.bind(equityFloor))
	}
	return nil
}
