package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	var s OrderedSet

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))
	s.AddAll("c", "a", "d")

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"b", "a", "c", "d"}, s.Values())
	assert.Equal(t, "b, a, c, d", s.Join(", "))
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("z"))

	values := s.Values()
	values[0] = "changed"
	assert.Equal(t, "b", s.Values()[0])
}

func TestOrderedSet_Clone(t *testing.T) {
	var s OrderedSet
	s.AddAll("a", "b")

	c := s.Clone()
	c.Add("c")

	assert.Equal(t, []string{"a", "b"}, s.Values())
	assert.Equal(t, []string{"a", "b", "c"}, c.Values())
	assert.False(t, s.Contains("c"))
}

func TestOrderedSet_Empty(t *testing.T) {
	var s OrderedSet

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
	assert.Equal(t, "", s.Join(" "))
	assert.False(t, s.Contains(""))
}
