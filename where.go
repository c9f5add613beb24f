package sqb

import "github.com/maxshaw/sqb/qb"

// Where adds a trimmed predicate joined with "and".
func (b *Builder) Where(filter string) *Builder {
	b.spec.Where(filter)
	return b
}

// WhereSpec is AndSpec.
func (b *Builder) WhereSpec(spec *qb.Spec) *Builder {
	return b.AndSpec(spec)
}

func (b *Builder) And(filter string) *Builder {
	b.spec.And(filter)
	return b
}

func (b *Builder) Or(filter string) *Builder {
	b.spec.Or(filter)
	return b
}

func (b *Builder) Append(filter string) *Builder {
	b.spec.Append(filter)
	return b
}

// AndSpec merges the joins of spec and adds its predicates in parentheses.
func (b *Builder) AndSpec(spec *qb.Spec) *Builder {
	b.spec.AndSpec(spec)
	return b
}

func (b *Builder) OrSpec(spec *qb.Spec) *Builder {
	b.spec.OrSpec(spec)
	return b
}

func (b *Builder) AndIf(cond bool, filter string) *Builder {
	if cond {
		b.spec.And(filter)
	}
	return b
}

func (b *Builder) AndSpecIf(cond bool, spec *qb.Spec) *Builder {
	if cond {
		b.spec.AndSpec(spec)
	}
	return b
}
