package qb

import "strings"

// OrderedSet keeps strings in insertion order and ignores repeats.
// The zero value is ready to use.
type OrderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *OrderedSet) Add(v string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}

	if _, exists := s.seen[v]; exists {
		return false
	}

	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *OrderedSet) AddAll(vs ...string) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *OrderedSet) Contains(v string) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements.
func (s *OrderedSet) Values() []string {
	return append([]string(nil), s.items...)
}

func (s *OrderedSet) Join(sep string) string {
	return strings.Join(s.items, sep)
}

func (s *OrderedSet) Clone() OrderedSet {
	var c OrderedSet
	c.AddAll(s.items...)
	return c
}
