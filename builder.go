package sqb

import "github.com/maxshaw/sqb/qb"

// Builder accumulates the clauses of a select statement. Mutators may be
// called in any order; only predicate fragments keep their call order.
// A Builder is not safe for concurrent mutation.
type Builder struct {
	spec qb.Spec

	cols []string
	from string

	groupBy []string
	having  []string

	orderBy      qb.OrderedSet
	defaultSorts qb.OrderedSet

	limit  int
	offset int64
}

func New() *Builder {
	return &Builder{}
}

// Clone returns a builder with a deep copy of b's state.
func (b *Builder) Clone() *Builder {
	return &Builder{
		spec:         *b.spec.Clone(),
		cols:         append([]string(nil), b.cols...),
		from:         b.from,
		groupBy:      append([]string(nil), b.groupBy...),
		having:       append([]string(nil), b.having...),
		orderBy:      b.orderBy.Clone(),
		defaultSorts: b.defaultSorts.Clone(),
		limit:        b.limit,
		offset:       b.offset,
	}
}
