package fieldset

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Set is an insertion-ordered name to value map. Replacing a value keeps the
// position of its first insertion. The zero value is not usable, see New.
type Set struct {
	m *linkedhashmap.Map
}

func New() *Set {
	return &Set{m: linkedhashmap.New()}
}

// Put stores value under name.
func (s *Set) Put(name string, value any) {
	s.m.Put(name, value)
}

// Get returns the value stored under name.
func (s *Set) Get(name string) (any, bool) {
	return s.m.Get(name)
}

func (s *Set) Has(name string) bool {
	_, ok := s.m.Get(name)
	return ok
}

func (s *Set) Len() int {
	return s.m.Size()
}

// Names returns field names in insertion order.
func (s *Set) Names() []string {
	keys := s.m.Keys()

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}

	return names
}

// Each calls fn for every field in insertion order.
func (s *Set) Each(fn func(name string, value any)) {
	s.m.Each(func(key, value any) {
		fn(key.(string), value)
	})
}

// Partition splits the set in two, keeping insertion order in both halves:
// names accepted by keep go to in, the rest to out.
func (s *Set) Partition(keep func(name string) bool) (in, out *Set) {
	in, out = New(), New()

	s.Each(func(name string, value any) {
		if keep(name) {
			in.Put(name, value)
		} else {
			out.Put(name, value)
		}
	})

	return in, out
}

// Clone returns a copy holding the same values.
func (s *Set) Clone() *Set {
	c := New()
	s.Each(c.Put)

	return c
}
