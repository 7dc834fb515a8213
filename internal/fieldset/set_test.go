package fieldset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"struct-builder/internal/fieldset"
)

func TestSetKeepsFirstInsertionOrder(t *testing.T) {
	t.Parallel()

	s := fieldset.New()
	s.Put("b", 1)
	s.Put("a", 2)
	s.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, s.Names())
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = s.Get("c")
	assert.False(t, ok)
	assert.False(t, s.Has("c"))
}

func TestSetPartition(t *testing.T) {
	t.Parallel()

	s := fieldset.New()
	s.Put("c", 3)
	s.Put("a", 1)
	s.Put("b", 2)

	in, out := s.Partition(func(name string) bool { return name != "c" })

	assert.Equal(t, []string{"a", "b"}, in.Names())
	assert.Equal(t, []string{"c"}, out.Names())
	assert.Equal(t, 3, s.Len(), "source set stays untouched")
}

func TestSetClone(t *testing.T) {
	t.Parallel()

	s := fieldset.New()
	s.Put("a", 1)

	c := s.Clone()
	c.Put("a", 2)
	c.Put("b", 3)

	assert.Equal(t, []string{"a"}, s.Names())
	assert.Equal(t, []string{"a", "b"}, c.Names())

	v, _ := s.Get("a")
	assert.Equal(t, 1, v)

	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
}
