package builder_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-builder/builder"
)

func TestNamedActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		action  string
		current any
		value   any
		want    any
	}{
		{"append to string", "append", "ab", "c", "abc"},
		{"append to slice", "append", []int64{1}, 2, []int64{1, 2}},
		{"append to any slice", "append", []any{1}, "x", []any{1, "x"}},
		{"extend slice", "extend", []int{1}, []any{2, 3}, []int{1, 2, 3}},
		{"extend string", "extend", "a", "b", "ab"},
		{"prepend to slice", "prepend", []string{"b"}, "a", []string{"a", "b"}},
		{"prepend to string", "prepend", "b", "a", "ab"},
		{"add ints", "add", 1, 2, 3},
		{"add floats", "add", 1.5, 1, 2.5},
		{"add narrow", "add", uint8(1), 2, uint8(3)},
		{"add to struct set", "add", map[string]struct{}{}, "a", map[string]struct{}{"a": {}}},
		{"add to bool set", "add", map[string]bool{"a": true}, "b", map[string]bool{"a": true, "b": true}},
		{"merge maps", "merge", map[string]int{"a": 1, "b": 1}, map[string]any{"b": 2}, map[string]int{"a": 1, "b": 2}},
		{"remove from slice", "remove", []string{"a", "b", "a"}, "a", []string{"b", "a"}},
		{"remove from map", "remove", map[string]int{"a": 1, "b": 2}, "a", map[string]int{"b": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := builder.Method(tt.action).Apply(tt.current, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamedActionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		action  string
		current any
		value   any
		want    error
	}{
		{"append to int", "append", 1, 2, builder.ErrIncompatibleValue},
		{"append wrong element", "append", []int{1}, "x", builder.ErrIncompatibleValue},
		{"add string to int", "add", 1, "x", builder.ErrIncompatibleValue},
		{"add to map of ints", "add", map[string]int{}, "x", builder.ErrIncompatibleValue},
		{"add to nil", "add", nil, 1, builder.ErrIncompatibleValue},
		{"merge into slice", "merge", []int{}, map[string]int{}, builder.ErrIncompatibleValue},
		{"unknown", "frobnicate", 1, 2, builder.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := builder.Method(tt.action).Apply(tt.current, tt.value)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := builder.Method("remove").Apply([]int{1}, 2)
	assert.EqualError(t, err, "remove: 2 is not in the slice")
}

type counter struct {
	N int
}

func (c *counter) Add(n int) { c.N += n }

func (c counter) Pair(a, b int) {}

type version []int

func (v version) With(n int) version { return append(slices.Clone(v), n) }

var errFull = errors.New("full")

type single struct {
	Items []string
}

func (s *single) Push(item string) error {
	if len(s.Items) > 0 {
		return errFull
	}

	s.Items = append(s.Items, item)

	return nil
}

func TestMethodAction(t *testing.T) {
	t.Parallel()

	orig := counter{N: 1}

	// a method of the value wins over the named action
	got, err := builder.Method("add").Apply(orig, 2)
	require.NoError(t, err)
	assert.Equal(t, counter{N: 3}, got)
	assert.Equal(t, 1, orig.N)

	ptr := &counter{N: 1}
	got, err = builder.Method("Add").Apply(ptr, 2)
	require.NoError(t, err)
	assert.Same(t, ptr, got)
	assert.Equal(t, 3, ptr.N)

	got, err = builder.Method("with").Apply(version{1}, 2)
	require.NoError(t, err)
	assert.Equal(t, version{1, 2}, got)

	got, err = builder.Method("push").Apply(single{}, "a")
	require.NoError(t, err)
	assert.Equal(t, single{Items: []string{"a"}}, got)

	_, err = builder.Method("push").Apply(got, "b")
	assert.ErrorIs(t, err, errFull)

	_, err = builder.Method("pair").Apply(counter{}, 1)
	assert.ErrorIs(t, err, builder.ErrUnknownAction)

	_, err = builder.Method("add").Apply(counter{}, "x")
	assert.ErrorIs(t, err, builder.ErrIncompatibleValue)
}

func TestOpAndMutate(t *testing.T) {
	t.Parallel()

	join := builder.Op(func(current []string, value string) []string { return append(current, value) })

	got, err := join.Apply([]any{"a"}, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = join.Apply([]string{}, 1)
	assert.ErrorIs(t, err, builder.ErrIncompatibleValue)

	counts := map[string]int{}
	inc := builder.Mutate(func(m map[string]int, key string) { m[key]++ })

	got, err = inc.Apply(counts, "a")
	require.NoError(t, err)
	_, err = inc.Apply(got, "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2}, counts)
}

func TestRegisterAction(t *testing.T) {
	t.Parallel()

	builder.RegisterAction("test-multiply", builder.Op(func(current, value int) int { return current * value }))

	a, ok := builder.LookupAction("test-multiply")
	require.True(t, ok)

	got, err := a.Apply(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	v, err := builder.New[strict]().Set("count", 3).Set("count", 4, builder.Method("test-multiply")).Build()
	require.NoError(t, err)
	assert.Equal(t, 12, v.Count)

	_, ok = builder.LookupAction("test-missing")
	assert.False(t, ok)
}
