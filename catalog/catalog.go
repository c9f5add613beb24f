// Package catalog loads named select statements from YAML and resolves them
// into builders.
//
// Definitions are resolved in file order. A definition may use any earlier
// one as a derived table, a join target or the right-hand side of an "in"
// predicate; the earlier statement is rendered at that point and embedded
// as text.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/maxshaw/sqb"
	"github.com/maxshaw/sqb/qb"
)

type Catalog struct {
	defs  []Definition
	built map[string]*sqb.Builder
}

// Load reads and resolves the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse resolves a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &ValidationError{Field: "queries", Msg: "invalid yaml", Underlying: err}
	}
	return New(f.Queries...)
}

// New resolves definitions in order.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{built: make(map[string]*sqb.Builder, len(defs))}

	for _, def := range defs {
		if def.Name == "" {
			return nil, &ValidationError{Field: "name", Msg: "must be not empty"}
		}
		if strings.ContainsFunc(def.Name, unicode.IsControl) {
			return nil, &ValidationError{Query: def.Name, Field: "name", Msg: "must not contain control characters"}
		}
		if _, exists := c.built[def.Name]; exists {
			return nil, &ValidationError{Query: def.Name, Field: "name", Msg: "defined more than once"}
		}

		b, err := c.resolve(def)
		if err != nil {
			return nil, err
		}

		c.defs = append(c.defs, def)
		c.built[def.Name] = b
	}

	return c, nil
}

// Names returns the query names in definition order.
func (c *Catalog) Names() []string {
	return lo.Map(c.defs, func(d Definition, _ int) string { return d.Name })
}

func (c *Catalog) Definition(name string) (Definition, bool) {
	return lo.Find(c.defs, func(d Definition) bool { return d.Name == name })
}

// Builder returns a fresh copy of the named query's builder; callers may
// extend it freely.
func (c *Catalog) Builder(name string) (*sqb.Builder, error) {
	b, ok := c.built[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuery, name)
	}
	return b.Clone(), nil
}

func (c *Catalog) resolve(def Definition) (*sqb.Builder, error) {
	b := sqb.New().
		Select(def.Select...).
		From(def.From).
		GroupBy(def.GroupBy...).
		Having(def.Having...).
		OrderBy(def.OrderBy...).
		DefaultOrderBy(def.DefaultOrderBy...).
		Limit(def.Limit).
		Offset(def.Offset)

	if ref := def.FromQuery; ref != nil {
		sub, err := c.lookup(def.Name, "from_query", ref.Query)
		if err != nil {
			return nil, err
		}
		b.FromSubQuery(sub, ref.Alias)
	}

	for i, j := range def.Joins {
		if err := c.join(b, def.Name, fmt.Sprintf("joins[%d]", i), j); err != nil {
			return nil, err
		}
	}

	if err := c.predicates(builderSink(b), def.Name, "where", def.Where); err != nil {
		return nil, err
	}

	return b, nil
}

func (c *Catalog) lookup(query, field, name string) (*sqb.Builder, error) {
	if name == "" {
		return nil, &ValidationError{Query: query, Field: field, Msg: "missing query reference"}
	}

	b, ok := c.built[name]
	if !ok {
		return nil, &ValidationError{
			Query:      query,
			Field:      field,
			Msg:        fmt.Sprintf("query %q must be defined before it is referenced", name),
			Underlying: ErrUnknownQuery,
		}
	}
	return b, nil
}

func (c *Catalog) join(b *sqb.Builder, query, field string, j Join) error {
	set := lo.Filter([]string{j.Join, j.Inner, j.Left, j.Query}, func(s string, _ int) bool { return s != "" })
	if len(set) != 1 {
		return &ValidationError{Query: query, Field: field, Msg: "exactly one of join, inner, left or query must be set"}
	}

	switch {
	case j.Join != "":
		b.Join(j.Join)
	case j.Inner != "":
		b.InnerJoin(j.Inner)
	case j.Left != "":
		b.LeftJoin(j.Left)
	default:
		sub, err := c.lookup(query, field, j.Query)
		if err != nil {
			return err
		}

		switch {
		case (j.Kind == "" || j.Kind == "inner") && j.Lateral:
			b.InnerJoinLateral(sub, j.Alias)
		case j.Kind == "" || j.Kind == "inner":
			b.InnerJoinQuery(sub, j.Alias)
		case j.Kind == "left" && j.Lateral:
			b.LeftJoinLateral(sub, j.Alias)
		case j.Kind == "left":
			b.LeftJoinQuery(sub, j.Alias)
		default:
			return &ValidationError{Query: query, Field: field + ".kind", Msg: fmt.Sprintf("unknown join kind %q", j.Kind)}
		}
	}

	return nil
}

// sink lets predicates target either a builder or a nested spec.
type sink struct {
	where, and, or, append func(string)
	andSpec, orSpec        func(*qb.Spec)
}

func builderSink(b *sqb.Builder) sink {
	return sink{
		where:   func(s string) { b.Where(s) },
		and:     func(s string) { b.And(s) },
		or:      func(s string) { b.Or(s) },
		append:  func(s string) { b.Append(s) },
		andSpec: func(s *qb.Spec) { b.AndSpec(s) },
		orSpec:  func(s *qb.Spec) { b.OrSpec(s) },
	}
}

func specSink(spec *qb.Spec) sink {
	return sink{
		where:   func(s string) { spec.Where(s) },
		and:     func(s string) { spec.And(s) },
		or:      func(s string) { spec.Or(s) },
		append:  func(s string) { spec.Append(s) },
		andSpec: func(s *qb.Spec) { spec.AndSpec(s) },
		orSpec:  func(s *qb.Spec) { spec.OrSpec(s) },
	}
}

func (c *Catalog) predicates(dst sink, query, field string, preds []Predicate) error {
	for i, p := range preds {
		if err := c.predicate(dst, query, fmt.Sprintf("%s[%d]", field, i), p); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) predicate(dst sink, query, field string, p Predicate) error {
	forms := []bool{
		p.Where != "", p.And != "", p.Or != "", p.Append != "",
		p.AndIn != nil, p.OrIn != nil, len(p.AndGroup) > 0, len(p.OrGroup) > 0,
	}
	if lo.Count(forms, true) != 1 {
		return &ValidationError{Query: query, Field: field, Msg: "exactly one predicate form must be set"}
	}

	switch {
	case p.Where != "":
		dst.where(p.Where)
	case p.And != "":
		dst.and(p.And)
	case p.Or != "":
		dst.or(p.Or)
	case p.Append != "":
		dst.append(p.Append)

	case p.AndIn != nil, p.OrIn != nil:
		in, add := p.AndIn, dst.and
		if in == nil {
			in, add = p.OrIn, dst.or
		}

		sub, err := c.lookup(query, field+".query", in.Query)
		if err != nil {
			return err
		}
		add(qb.InQuery(in.Column, sub.Build()))

	default:
		group, merge, name := p.AndGroup, dst.andSpec, ".and_group"
		if len(group) == 0 {
			group, merge, name = p.OrGroup, dst.orSpec, ".or_group"
		}

		spec := qb.NewSpec()
		if err := c.predicates(specSink(spec), query, field+name, group); err != nil {
			return err
		}
		merge(spec)
	}

	return nil
}
