package builder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-builder/builder"
)

func TestParseFields(t *testing.T) {
	t.Parallel()

	fields, err := builder.ParseFields([]byte(`
zeta: 1
alpha: text
nested:
  key: value
list: [1, two]
empty:
`))
	require.NoError(t, err)
	assert.Equal(t, builder.Fields{
		{Name: "zeta", Value: 1},
		{Name: "alpha", Value: "text"},
		{Name: "nested", Value: map[string]any{"key": "value"}},
		{Name: "list", Value: []any{1, "two"}},
		{Name: "empty", Value: nil},
	}, fields)
}

func TestParseFieldsErrors(t *testing.T) {
	t.Parallel()

	fields, err := builder.ParseFields(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = builder.ParseFields([]byte("- a\n- b\n"))
	require.ErrorIs(t, err, builder.ErrNotMapping)

	_, err = builder.ParseFields([]byte("a: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, builder.ErrNotMapping)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	b, err := builder.FromYAML[server]([]byte(`
host: example.org
port: 8080
timeout: 1m30s
tags: [a, b]
`))
	require.NoError(t, err)

	s, err := b.Set("tags", "c", builder.Method("append")).Build()
	require.NoError(t, err)
	assert.Equal(t, server{
		Host:    "example.org",
		Port:    8080,
		Timeout: 90 * time.Second,
		Tags:    []string{"a", "b", "c"},
	}, s)

	_, err = builder.FromYAML[server]([]byte("[]"))
	assert.ErrorIs(t, err, builder.ErrNotMapping)
}
