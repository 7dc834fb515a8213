package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"struct-builder/builder"
)

type resolved struct {
	Alpha   string `build:"a"`
	Beta    string `json:"b"`
	Gamma   string
	DeltaEp string
	Hidden  string `build:"-"`
	Ptr     *int
	Val     int

	secret string
}

func TestAttributeResolution(t *testing.T) {
	t.Parallel()

	seven := 7

	tests := []struct {
		name  string
		value any
		check func(t *testing.T, v resolved)
	}{
		{"a", "x", func(t *testing.T, v resolved) { assert.Equal(t, "x", v.Alpha) }},
		{"b", "x", func(t *testing.T, v resolved) { assert.Equal(t, "x", v.Beta) }},
		{"Gamma", "x", func(t *testing.T, v resolved) { assert.Equal(t, "x", v.Gamma) }},
		{"gamma", "x", func(t *testing.T, v resolved) { assert.Equal(t, "x", v.Gamma) }},
		{"delta_ep", "x", func(t *testing.T, v resolved) { assert.Equal(t, "x", v.DeltaEp) }},
		{"delta-ep", "x", func(t *testing.T, v resolved) { assert.Equal(t, "x", v.DeltaEp) }},
		{"ptr", 5, func(t *testing.T, v resolved) {
			require.NotNil(t, v.Ptr)
			assert.Equal(t, 5, *v.Ptr)
		}},
		{"ptr", nil, func(t *testing.T, v resolved) { assert.Nil(t, v.Ptr) }},
		{"val", &seven, func(t *testing.T, v resolved) { assert.Equal(t, 7, v.Val) }},
		{"val", int16(3), func(t *testing.T, v resolved) { assert.Equal(t, 3, v.Val) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := builder.New[resolved]().Set(tt.name, tt.value).Build()
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestAttributeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  error
	}{
		{"hidden", "x", builder.ErrUnknownField},
		{"secret", "x", builder.ErrUnknownField},
		{"val", nil, builder.ErrIncompatibleValue},
		{"val", "seven", builder.ErrIncompatibleValue},
		{"gamma", []string{"x"}, builder.ErrIncompatibleValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := builder.New[resolved]().Set(tt.name, tt.value).Build()
			require.ErrorIs(t, err, tt.want)

			var fe *builder.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.name, fe.Field)
		})
	}
}

type strict struct {
	Name  string
	Count int
}

func TestUnknownFieldSuggestions(t *testing.T) {
	t.Parallel()

	_, err := builder.New[strict]().Set("nam", "x").Set("cuont", 1).Build()
	require.ErrorIs(t, err, builder.ErrUnknownField)
	assert.ErrorContains(t, err, `field "nam": unknown field on builder_test.strict (did you mean "Name"?)`)
	assert.ErrorContains(t, err, `field "cuont": unknown field on builder_test.strict (did you mean "Count"?)`)

	_, err = builder.New[strict]().Set("zzzzzz", 1).Build()
	assert.EqualError(t, err, `field "zzzzzz": unknown field on builder_test.strict`)
}

type withExtras struct {
	Name  string
	Extra builder.Attributes
}

func TestAttributesSink(t *testing.T) {
	t.Parallel()

	v, err := builder.New[*withExtras]().Set("name", "n").Set("color", "red").Set("none", nil).Build()
	require.NoError(t, err)
	assert.Equal(t, "n", v.Name)
	assert.Equal(t, builder.Attributes{"color": "red", "none": nil}, v.Extra)
}

type Base struct {
	ID int
}

type derived struct {
	*Base
	Name string
}

type hiddenBase struct {
	ID int
}

type derivedHidden struct {
	*hiddenBase
}

func TestEmbeddedPointerIsAllocated(t *testing.T) {
	t.Parallel()

	v, err := builder.New[derived]().Set("id", 7).Set("name", "n").Build()
	require.NoError(t, err)
	require.NotNil(t, v.Base)
	assert.Equal(t, 7, v.ID)

	_, err = builder.New[derivedHidden]().Set("id", 7).Build()
	assert.ErrorIs(t, err, builder.ErrNoTarget)
}

type named interface {
	GetName() string
}

type person struct {
	Name string
}

func (p *person) GetName() string { return p.Name }

func TestInterfaceTarget(t *testing.T) {
	t.Parallel()

	typ := builder.MustDefine[named](builder.WithConstructor(func() named { return &person{} }))

	v, err := typ.Builder().Set("name", "bob").Build()
	require.NoError(t, err)
	assert.Equal(t, "bob", v.GetName())
}

type recorder struct {
	Known string
	seen  []string
}

func (r *recorder) SetAttribute(name string, _ any) error {
	r.seen = append(r.seen, name)
	return nil
}

func TestAttributeSetterOnAddress(t *testing.T) {
	t.Parallel()

	v, err := builder.New[recorder]().Set("known", "k").Set("other", 1).Set("more", 2).Build()
	require.NoError(t, err)
	assert.Equal(t, "k", v.Known)
	assert.Equal(t, []string{"other", "more"}, v.seen)
}

func TestAttributeSetter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mock := NewMockAttributeSetter(ctrl)

	typ := builder.MustDefine[*MockAttributeSetter](builder.WithConstructor(func() *MockAttributeSetter {
		return mock
	}))

	gomock.InOrder(
		mock.EXPECT().SetAttribute("color", "red"),
		mock.EXPECT().SetAttribute("size", 3),
	)

	v, err := typ.Builder().Set("color", "red").Set("size", 3).Build()
	require.NoError(t, err)
	assert.Same(t, mock, v)

	errRejected := errors.New("rejected")
	mock.EXPECT().SetAttribute("bad", nil).Return(errRejected)

	_, err = typ.Builder().Set("bad", nil).Build()
	require.ErrorIs(t, err, errRejected)

	var fe *builder.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "bad", fe.Field)
}

func TestSameFieldUnderTwoNames(t *testing.T) {
	t.Parallel()

	_, err := builder.New[strict]().Set("name", "a").Set("Name", "b").Set("NAME", "c").Build()
	require.ErrorIs(t, err, builder.ErrDuplicateField)
	assert.ErrorContains(t, err, `field "Name": field already set under another name: "name" also sets Name`)
	assert.ErrorContains(t, err, `field "NAME": field already set under another name: "name" also sets Name`)

	// different fields with similar names are fine
	v, err := builder.New[resolved]().Set("gamma", "g").Set("delta_ep", "d").Build()
	require.NoError(t, err)
	assert.Equal(t, "g", v.Gamma)
	assert.Equal(t, "d", v.DeltaEp)
}
