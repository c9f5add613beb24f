package qb

import "strings"

// Spec collects join clauses and predicate fragments.
//
// Every fragment is stored with its own leading connective ("and ", "or " or
// nothing). Only the first connective is dropped when the body is rendered,
// so fragments and nested specs compose in any order.
type Spec struct {
	where OrderedSet
	joins OrderedSet
}

func NewSpec() *Spec {
	return &Spec{}
}

func (s *Spec) Join(stmt string) *Spec {
	s.joins.Add(strings.TrimSpace(stmt))
	return s
}

func (s *Spec) InnerJoin(stmt string) *Spec {
	s.joins.Add("inner join " + strings.TrimSpace(stmt))
	return s
}

func (s *Spec) LeftJoin(stmt string) *Spec {
	s.joins.Add("left join " + strings.TrimSpace(stmt))
	return s
}

// Where adds a trimmed fragment joined with "and".
func (s *Spec) Where(filter string) *Spec {
	s.where.Add("and " + strings.TrimSpace(filter))
	return s
}

// And adds filter as is, joined with "and".
func (s *Spec) And(filter string) *Spec {
	s.where.Add("and " + filter)
	return s
}

func (s *Spec) Or(filter string) *Spec {
	s.where.Add("or " + strings.TrimSpace(filter))
	return s
}

// Append adds a fragment without a connective. As the first fragment it
// suppresses the where clause altogether.
func (s *Spec) Append(filter string) *Spec {
	s.where.Add(strings.TrimSpace(filter))
	return s
}

// AndSpec merges other's joins and adds its predicates as one
// parenthesized "and" fragment. Predicates of other that render no body,
// such as a leading Append, are dropped.
func (s *Spec) AndSpec(other *Spec) *Spec {
	return s.merge("and ", other)
}

// OrSpec is AndSpec with an "or" connective.
func (s *Spec) OrSpec(other *Spec) *Spec {
	return s.merge("or ", other)
}

func (s *Spec) merge(connective string, other *Spec) *Spec {
	if other == nil {
		return s
	}

	s.joins.AddAll(other.joins.items...)

	if body, ok := other.Body(); ok {
		s.where.Add(connective + "(" + strings.TrimSpace(body) + ")")
	}
	return s
}

// Body renders the predicates with the first connective removed. The result
// keeps a leading space. ok is false when there is nothing to render or the
// first fragment carries no connective.
func (s *Spec) Body() (body string, ok bool) {
	filters := s.where.Join(" ")

	switch {
	case strings.HasPrefix(filters, "and "):
		return " " + filters[len("and "):], true
	case strings.HasPrefix(filters, "or "):
		return " " + filters[len("or "):], true
	}
	return "", false
}

// Joins returns the join clauses in insertion order.
func (s *Spec) Joins() []string {
	return s.joins.Values()
}

// Predicates returns the stored fragments including their connectives.
func (s *Spec) Predicates() []string {
	return s.where.Values()
}

func (s *Spec) Empty() bool {
	return s.where.Len() == 0 && s.joins.Len() == 0
}

func (s *Spec) Clone() *Spec {
	return &Spec{
		where: s.where.Clone(),
		joins: s.joins.Clone(),
	}
}
