package sqb

import (
	"strconv"
	"strings"

	"github.com/maxshaw/sqb/qb"
)

func (b *Builder) Select(cols ...string) *Builder {
	b.cols = append(b.cols, cols...)
	return b
}

func (b *Builder) From(from string) *Builder {
	b.from = from
	return b
}

// Join adds a complete join clause, keyword included.
func (b *Builder) Join(stmt string) *Builder {
	b.spec.Join(stmt)
	return b
}

func (b *Builder) InnerJoin(stmt string) *Builder {
	b.spec.InnerJoin(stmt)
	return b
}

func (b *Builder) LeftJoin(stmt string) *Builder {
	b.spec.LeftJoin(stmt)
	return b
}

func (b *Builder) GroupBy(cols ...string) *Builder {
	b.groupBy = append(b.groupBy, cols...)
	return b
}

func (b *Builder) Having(exprs ...string) *Builder {
	b.having = append(b.having, exprs...)
	return b
}

// OrderBy adds sort expressions. Entries are trimmed, blanks and repeats
// are ignored.
func (b *Builder) OrderBy(cols ...string) *Builder {
	b.orderBy.AddAll(trimmed(cols)...)
	return b
}

// DefaultOrderBy sets the sorting used when OrderBy was never given.
func (b *Builder) DefaultOrderBy(cols ...string) *Builder {
	b.defaultSorts.AddAll(trimmed(cols)...)
	return b
}

// Limit sets the row limit. Values below one leave it out.
func (b *Builder) Limit(limit int) *Builder {
	b.limit = limit
	return b
}

// Offset sets the row offset. Values below one leave it out.
func (b *Builder) Offset(offset int64) *Builder {
	b.offset = offset
	return b
}

// Build renders the full statement.
func (b *Builder) Build() string {
	if b == nil {
		return ""
	}
	return b.build(strings.Join(b.cols, ", "), true, true)
}

// BuildCount renders "select count(1)" over the same source, joins,
// predicates, grouping and having. Ordering and paging are left out.
func (b *Builder) BuildCount() string {
	return b.build("count(1) ", false, false)
}

// BuildTotal renders a statement returning the number of rows BuildUnpaged
// yields. Without grouping it equals BuildCount; grouped statements are
// counted over a derived table of their groups.
func (b *Builder) BuildTotal() string {
	if b == nil || len(b.groupBy) == 0 {
		return b.BuildCount()
	}
	return "select count(1) from (" + b.build("1 as n", false, false) + ") grouped"
}

// BuildUnpaged renders the full statement without limit and offset.
func (b *Builder) BuildUnpaged() string {
	if b == nil {
		return ""
	}
	return b.build(strings.Join(b.cols, ", "), true, false)
}

// BuildWhere renders " where ..." or an empty string when there is no
// predicate body.
func (b *Builder) BuildWhere() string {
	body, ok := b.spec.Body()
	if !ok {
		return ""
	}
	return " where" + body
}

func (b *Builder) build(cols string, sorted, paging bool) string {
	if b == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("select ")
	sb.WriteString(cols)

	sb.WriteString(" from ")
	sb.WriteString(b.from)

	if joins := b.spec.Joins(); len(joins) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(joins, " "))
	}

	sb.WriteString(b.BuildWhere())

	if len(b.groupBy) > 0 {
		sb.WriteString(" group by ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}

	if len(b.having) > 0 {
		sb.WriteString(" having ")
		sb.WriteString(strings.Join(b.having, ", "))
	}

	if !sorted {
		return sb.String()
	}

	if sorts := b.sorts(); sorts.Len() > 0 {
		sb.WriteString(" order by ")
		sb.WriteString(sorts.Join(", "))
	}

	if paging {
		if b.limit > 0 {
			sb.WriteString(" limit ")
			sb.WriteString(strconv.Itoa(b.limit))
		}

		if b.offset > 0 {
			sb.WriteString(" offset ")
			sb.WriteString(strconv.FormatInt(b.offset, 10))
		}
	}

	return sb.String()
}

func (b *Builder) sorts() *qb.OrderedSet {
	if b.orderBy.Len() > 0 {
		return &b.orderBy
	}
	return &b.defaultSorts
}
