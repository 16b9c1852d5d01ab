// Package sqlbuild assembles parameterized PostgreSQL SELECT statements.
//
// A statement is an ordered list of predicate fragments, each paired with
// the values it binds. Fragments use "?" as a placeholder; Build numbers
// them ($1, $2, ...) in the order they appear in the rendered statement, so
// no caller ever tracks a running parameter index and no value is ever
// interpolated into the SQL text.
//
//	q, err := sqlbuild.NewSelect("SELECT * FROM properties").
//		Where(sqlbuild.Pred("city LIKE ?", "%van%")).
//		OrderBy("cost_per_night").
//		Limit(10).
//		Build()
//
// Every method returns a new Select; a Select can be shared and extended
// without affecting other statements derived from it.
package sqlbuild

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrPlaceholderMismatch is returned when a fragment's "?" count differs
// from the number of values it was given.
var ErrPlaceholderMismatch = errors.New("sqlbuild: placeholder count does not match argument count")

// Predicate is one boolean SQL fragment and the values it binds.
type Predicate struct {
	SQL  string
	Args []any
}

// Pred creates a Predicate.
func Pred(sql string, args ...any) Predicate {
	return Predicate{SQL: sql, Args: args}
}

// Query is a rendered statement ready for pool.Query(ctx, q.SQL, q.Args...).
type Query struct {
	SQL  string
	Args []any
}

// Select is an immutable SELECT statement under construction.
type Select struct {
	base    string
	where   []Predicate
	groupBy []string
	having  []Predicate
	orderBy []string
	limit   *int
}

// NewSelect starts a statement from its skeleton: the SELECT list plus
// FROM and JOIN clauses.
func NewSelect(base string) Select {
	return Select{base: strings.TrimSpace(base)}
}

// Where appends p to the WHERE clause; predicates are joined with AND.
func (s Select) Where(p Predicate) Select {
	s.where = append(slices.Clip(s.where), p)
	return s
}

// GroupBy appends grouping expressions.
func (s Select) GroupBy(exprs ...string) Select {
	s.groupBy = append(slices.Clip(s.groupBy), exprs...)
	return s
}

// Having appends p to the HAVING clause; predicates are joined with AND.
func (s Select) Having(p Predicate) Select {
	s.having = append(slices.Clip(s.having), p)
	return s
}

// OrderBy appends ordering expressions.
func (s Select) OrderBy(exprs ...string) Select {
	s.orderBy = append(slices.Clip(s.orderBy), exprs...)
	return s
}

// Limit caps the number of rows. The limit is bound as a parameter.
func (s Select) Limit(n int) Select {
	s.limit = &n
	return s
}

// Build renders the statement.
func (s Select) Build() (Query, error) {
	r := renderer{}
	r.sb.WriteString(s.base)

	if err := r.clause("WHERE", s.where); err != nil {
		return Query{}, err
	}

	if len(s.groupBy) > 0 {
		r.sb.WriteString("\nGROUP BY ")
		r.sb.WriteString(strings.Join(s.groupBy, ", "))
	}

	if err := r.clause("HAVING", s.having); err != nil {
		return Query{}, err
	}

	if len(s.orderBy) > 0 {
		r.sb.WriteString("\nORDER BY ")
		r.sb.WriteString(strings.Join(s.orderBy, ", "))
	}

	if s.limit != nil {
		r.sb.WriteString("\nLIMIT ")
		if err := r.fragment(Pred("?", *s.limit)); err != nil {
			return Query{}, err
		}
	}

	return Query{SQL: r.sb.String(), Args: r.args}, nil
}

type renderer struct {
	sb   strings.Builder
	args []any
}

func (r *renderer) clause(keyword string, preds []Predicate) error {
	if len(preds) == 0 {
		return nil
	}

	r.sb.WriteString("\n")
	r.sb.WriteString(keyword)
	r.sb.WriteString(" ")
	for i, p := range preds {
		if i > 0 {
			r.sb.WriteString(" AND ")
		}
		if err := r.fragment(p); err != nil {
			return err
		}
	}
	return nil
}

// fragment writes p.SQL with each "?" replaced by the next positional
// placeholder and records p.Args.
func (r *renderer) fragment(p Predicate) error {
	if n := strings.Count(p.SQL, "?"); n != len(p.Args) {
		return fmt.Errorf("%w: %q has %d placeholders and %d args", ErrPlaceholderMismatch, p.SQL, n, len(p.Args))
	}

	rest := p.SQL
	for _, arg := range p.Args {
		i := strings.IndexByte(rest, '?')
		r.sb.WriteString(rest[:i])
		r.args = append(r.args, arg)
		r.sb.WriteString("$")
		r.sb.WriteString(strconv.Itoa(len(r.args)))
		rest = rest[i+1:]
	}
	r.sb.WriteString(rest)
	return nil
}
