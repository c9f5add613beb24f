package sqb

import "github.com/maxshaw/sqb/qb"

// The methods below render sub at call time and keep only the resulting
// text. Later changes to sub do not reach b.

func (b *Builder) FromSubQuery(sub *Builder, alias string) *Builder {
	return b.From(qb.Subquery(sub.Build(), alias))
}

func (b *Builder) InnerJoinQuery(sub *Builder, alias string) *Builder {
	return b.InnerJoin(qb.Subquery(sub.Build(), alias))
}

func (b *Builder) LeftJoinQuery(sub *Builder, alias string) *Builder {
	return b.LeftJoin(qb.Subquery(sub.Build(), alias))
}

// InnerJoinLateral adds "inner join lateral (sub) alias on true".
func (b *Builder) InnerJoinLateral(sub *Builder, alias string) *Builder {
	return b.InnerJoin(qb.Lateral(sub.Build(), alias))
}

// LeftJoinLateral adds "left join lateral (sub) alias on true".
func (b *Builder) LeftJoinLateral(sub *Builder, alias string) *Builder {
	return b.LeftJoin(qb.Lateral(sub.Build(), alias))
}

// AndIn adds "and col in (sub)".
func (b *Builder) AndIn(col string, sub *Builder) *Builder {
	return b.And(qb.InQuery(col, sub.Build()))
}

func (b *Builder) OrIn(col string, sub *Builder) *Builder {
	return b.Or(qb.InQuery(col, sub.Build()))
}
